package placeholder

import (
	"reflect"
	"strconv"
	"strings"
)

// ResolvePath resolves a dotted, optionally indexed path against a data
// context. It returns the resolved value and whether resolution succeeded.
// Resolution short-circuits the moment any intermediate value is missing,
// nil, or not indexable; it never panics.
//
// The paths "." and "this" resolve to the loop element installed by the
// directive evaluator, falling back to the data context itself.
func ResolvePath(data map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	if path == "." || path == "this" {
		if v, ok := data["."]; ok {
			return v, true
		}
		if data == nil {
			return nil, false
		}
		return data, true
	}

	var current any = data
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}

		key, indexes, ok := splitIndexes(segment)
		if !ok {
			return nil, false
		}

		if key != "" {
			v, ok := lookupKey(current, key)
			if !ok {
				return nil, false
			}
			current = v
		}

		for _, idx := range indexes {
			v, ok := lookupIndex(current, idx)
			if !ok {
				return nil, false
			}
			current = v
		}
	}

	return current, true
}

// splitIndexes splits a path segment like "items[2][0]" into its key and
// index parts. A segment without brackets yields the key alone.
func splitIndexes(segment string) (key string, indexes []int, ok bool) {
	open := strings.IndexByte(segment, '[')
	if open < 0 {
		return segment, nil, true
	}

	key = segment[:open]
	rest := segment[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		closing := strings.IndexByte(rest, ']')
		if closing < 0 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:closing])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[closing+1:]
	}

	return key, indexes, true
}

func lookupKey(v any, key string) (any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case map[string]string:
		val, ok := m[key]
		return val, ok
	}

	// Uncommon map shapes (map[string]int etc.) reach here.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		val := rv.MapIndex(reflect.ValueOf(key))
		if val.IsValid() {
			return val.Interface(), true
		}
	}
	return nil, false
}

func lookupIndex(v any, idx int) (any, bool) {
	if v == nil || idx < 0 {
		return nil, false
	}

	switch s := v.(type) {
	case []any:
		if idx >= len(s) {
			return nil, false
		}
		return s[idx], true
	case []string:
		if idx >= len(s) {
			return nil, false
		}
		return s[idx], true
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && idx < rv.Len() {
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}

// ToSlice normalizes any slice or array value to []any. It returns false
// for non-slice values, including strings.
func ToSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
