package extract

import (
	"encoding/json"
	"strings"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/placeholder"
)

// TranslatableItem is one translatable text occurrence within a document.
// The (BlockID, TranslationKey) pair is unique per document.
type TranslatableItem struct {
	BlockID        string
	TranslationKey string
	BlockType      document.BlockType
	OriginalText   string
	Context        string
}

// TemplateVariables returns the unique variable names referenced anywhere
// in the document, in traversal order. Each block's props are serialized to
// a flat text form and scanned for placeholder occurrences.
func TemplateVariables(doc *document.Document) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)

	doc.Walk(func(_ string, b *document.Block) bool {
		if len(b.Props) == 0 {
			return true
		}

		serialized, err := json.Marshal(b.Props)
		if err != nil {
			return true
		}

		for _, name := range placeholder.ExtractNames(string(serialized)) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return true
	})

	return names
}

// TranslatableText returns every translatable text occurrence in the
// document, in traversal order. A field whose text is nothing but
// placeholders (whitespace remains after stripping them) yields no item.
func TranslatableText(doc *document.Document) []TranslatableItem {
	var items []TranslatableItem

	doc.Walk(func(id string, b *document.Block) bool {
		fields := document.TextFields(b.Type)
		if len(fields) == 0 || b.Props == nil {
			return true
		}

		for _, f := range fields {
			if f.List {
				for i, text := range b.Props.Strings(f.Name) {
					if item, ok := newItem(id, b.Type, f.Name, i, text); ok {
						items = append(items, item)
					}
				}
				continue
			}

			if item, ok := newItem(id, b.Type, f.Name, 0, b.Props.String(f.Name)); ok {
				items = append(items, item)
			}
		}
		return true
	})

	return items
}

func newItem(blockID string, t document.BlockType, field string, index int, text string) (TranslatableItem, bool) {
	if strings.TrimSpace(placeholder.StripPlaceholders(text)) == "" {
		return TranslatableItem{}, false
	}

	return TranslatableItem{
		BlockID:        blockID,
		TranslationKey: document.TranslationKey(field, index),
		BlockType:      t,
		OriginalText:   text,
		Context:        string(t) + " " + field,
	}, true
}

// ValidateVariables partitions variable names into those that resolve
// against the data context and those that do not.
func ValidateVariables(names []string, data map[string]any) (valid, invalid []string) {
	for _, name := range names {
		if _, ok := placeholder.ResolvePath(data, name); ok {
			valid = append(valid, name)
		} else {
			invalid = append(invalid, name)
		}
	}
	return valid, invalid
}
