package placeholder

import (
	"fmt"
	"strconv"
)

// MissingHandler produces a replacement for a variable that resolved to
// nothing and carried no default.
type MissingHandler func(name string) string

// ReplaceOption configures variable replacement.
type ReplaceOption func(*replaceOptions)

type replaceOptions struct {
	missing MissingHandler
}

// WithMissingHandler installs a handler for unresolved variables without a
// default. Without one, unresolved variables become the empty string.
func WithMissingHandler(fn MissingHandler) ReplaceOption {
	return func(o *replaceOptions) {
		o.missing = fn
	}
}

// ReplaceVariables substitutes every placeholder in text against the data
// context. Unresolved variables degrade to their default value, the missing
// handler, or the empty string; no placeholder is ever left in the output.
// Directive tokens ({{#each}}, {{#if}}, {{else}}, closers) are not
// placeholders and remain untouched.
//
// The function is pure and deterministic for identical inputs.
func ReplaceVariables(text string, data map[string]any, opts ...ReplaceOption) string {
	var o replaceOptions
	for _, opt := range opts {
		opt(&o)
	}

	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := match[2 : len(match)-2]
		v, ok := Parse(inner)
		if !ok {
			return match
		}
		v.FullMatch = match

		return resolveVariable(v, data, o.missing)
	})
}

func resolveVariable(v Variable, data map[string]any, missing MissingHandler) string {
	value, ok := ResolvePath(data, v.Name)
	if !ok || value == nil {
		switch {
		case v.HasDefault:
			return ApplyFilters(v.Default, v.Filters)
		case missing != nil:
			return ApplyFilters(missing(v.Name), v.Filters)
		default:
			return ApplyFilters("", v.Filters)
		}
	}

	return ApplyFilters(Stringify(value), v.Filters)
}

// Stringify converts a resolved value to its text form: nil becomes the
// empty string, floats print their shortest representation, everything else
// uses its natural fmt form.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
