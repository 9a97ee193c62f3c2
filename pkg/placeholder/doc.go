// Package placeholder implements the double-brace variable syntax used in
// email template text.
//
// # Grammar
//
// A placeholder is "{{ path (| segment)* }}" where path is a dotted,
// optionally indexed data path ("user.name", "items[0]", "a.items[2].b")
// and each pipe segment is either a default value or a filter:
//
//	{{user.name}}
//	{{user.name|default:"Guest"}}
//	{{price|currency:EUR}}
//	{{name|trim|uppercase}}
//	{{createdAt|date:long}}
//
// Parsing is tolerant by design: text that does not match the grammar is
// not an error, it is simply not a placeholder. Path resolution never
// panics; it degrades to the default value, an injected missing handler, or
// the empty string, in that order. ReplaceVariables is pure and leaves no
// placeholder behind in its output.
package placeholder
