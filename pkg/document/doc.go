// Package document defines the tree-shaped email document model produced by
// the template builder and consumed by the resolution pipeline.
//
// A document is a flat map from block id to block plus an ordered list of
// root ids. Blocks nest through their "childrenIds" prop or, for multi-column
// blocks, through a "columns" array where each column holds its own
// "childrenIds". The package provides traversal primitives, deep cloning,
// and the pure translated-copy transform; it performs no validation beyond
// tolerating malformed references (dangling ids resolve to nothing).
//
// # Traversal
//
//	doc.Walk(func(id string, b *document.Block) bool {
//	    fmt.Println(id, b.Type)
//	    return true
//	})
//
// Traversal order is deterministic: roots in childrenIds order, depth-first
// into direct children, then into columns left to right.
//
// # Translated copies
//
// ApplyTranslations never mutates its input; it returns a structurally
// independent copy with translatable text fields replaced:
//
//	translated := document.ApplyTranslations(doc, map[string]string{
//	    "blk_1_text_0": "Bonjour",
//	})
package document
