// Package extract walks email documents to discover variable references and
// translatable text.
//
// TemplateVariables scans a serialized form of each block's props for
// placeholder occurrences and accumulates unique variable names in document
// traversal order. The scan is deliberately lenient: literal text that
// happens to contain {{...}} is reported as a variable, a known limitation
// carried over from the builder.
//
// TranslatableText pulls the human-text fields specific to each block type
// and derives a deterministic translation key per field occurrence. Fields
// that contain nothing but placeholders are skipped; there is nothing to
// translate in them.
//
// None of the functions in this package mutate the document.
package extract
