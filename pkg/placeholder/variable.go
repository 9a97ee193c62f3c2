package placeholder

import (
	"regexp"
	"strings"
)

// Variable describes a single parsed placeholder occurrence.
type Variable struct {
	// Name is the dotted/indexed data path, e.g. "user.items[2].name".
	Name string

	// FullMatch is the raw placeholder text including braces.
	FullMatch string

	// Default is the fallback value from a default:"..." segment.
	Default string

	// HasDefault reports whether a default segment was present, so an
	// explicit empty default can be told apart from no default.
	HasDefault bool

	// Filters are applied left to right to the stringified value.
	Filters []Filter
}

// Filter is one pipe segment of a placeholder, e.g. "currency:EUR" parses
// to {Name: "currency", Arg: "EUR"}.
type Filter struct {
	Name string
	Arg  string
}

// pattern matches one double-brace occurrence. The inner part is kept
// non-greedy and brace-free so adjacent placeholders never merge.
var pattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Parse parses the inner text of a placeholder (without braces) into a
// Variable. It returns false for directive tokens (#each, #if, /each, /if,
// else), which share the brace syntax but are not variables.
func Parse(inner string) (Variable, bool) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Variable{}, false
	}
	if strings.HasPrefix(inner, "#") || strings.HasPrefix(inner, "/") || inner == "else" {
		return Variable{}, false
	}

	segments := strings.Split(inner, "|")
	v := Variable{Name: strings.TrimSpace(segments[0])}
	if v.Name == "" {
		return Variable{}, false
	}

	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		name, arg, _ := strings.Cut(seg, ":")
		name = strings.TrimSpace(name)
		arg = strings.TrimSpace(arg)

		if name == "default" {
			v.Default = Unquote(arg)
			v.HasDefault = true
			continue
		}

		v.Filters = append(v.Filters, Filter{Name: name, Arg: Unquote(arg)})
	}

	return v, true
}

// Unquote strips one pair of surrounding single or double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
