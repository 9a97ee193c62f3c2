// Package render orchestrates the template resolution pipeline: it turns a
// structured email document plus a language selection and a data payload
// into final HTML and plain-text output.
//
// The pipeline sequences four stages:
//
//  1. apply translations to a copy of the tree (never the caller's
//     document), with a two-level language fallback;
//  2. delegate to a TreeRenderer to obtain the HTML string;
//  3. run loops, conditionals, and variable substitution over that HTML
//     with the caller-supplied sample data;
//  4. derive a lossy plain-text version from the final HTML.
//
// Degraded output always beats a failed render: unresolved variables
// become defaults or empty strings, translation problems produce advisory
// notes in Result.MissingTranslations, and the only error surfaced is a
// TreeRenderer failure.
//
//	pipeline := render.New(markup.NewRenderer(),
//	    render.WithTranslations(resolver),
//	)
//
//	res, err := pipeline.Render(ctx, doc, render.Options{
//	    SampleData: map[string]any{"user": map[string]any{"name": "Ann"}},
//	    Language:   "fr",
//	    TemplateID: "tpl_welcome",
//	})
package render
