// Package markup is the default tree-to-HTML renderer: a deterministic,
// pure transform from a document tree to simple, table-free HTML.
//
// It implements the render.TreeRenderer contract. Placeholder and
// directive tokens in block text pass through untouched so the variable
// passes can run over the produced HTML; only the HTML metacharacters
// & < > are escaped, never quotes, because quotes are significant inside
// placeholder default values.
//
//	renderer := markup.NewRenderer(markup.WithMarkdown())
//	html, err := renderer.Render(doc)
package markup
