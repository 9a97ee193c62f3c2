// Package directive evaluates the loop and conditional blocks embedded in
// rendered template text.
//
// Directives share the double-brace syntax with variables:
//
//	{{#each items}}<li>{{name}}</li>{{/each}}
//	{{#if score > 10}}high{{else}}low{{/if}}
//
// Process always runs the three passes in a fixed order (loops, then
// conditionals, then variables) and re-applies the full sequence to the
// body of every loop iteration and every chosen conditional branch, so
// nested directives resolve against the narrowed data context of their
// enclosing loop.
//
// Directives are opt-in text patterns, not a required grammar: anything
// that does not match (an unclosed block, a stray {{/each}}) is left
// untouched in the output.
package directive
