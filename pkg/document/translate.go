package document

// ApplyTranslations returns a deep copy of the document with translatable
// text fields replaced from the given map. Keys follow the
// "<blockId>_<translationKey>" convention; entries with empty text and keys
// that match nothing are ignored. The input document is never mutated.
func ApplyTranslations(d *Document, translations map[string]string) *Document {
	out := d.Clone()
	if out == nil || len(translations) == 0 {
		return out
	}

	for id, b := range out.Blocks {
		fields := TextFields(b.Type)
		if len(fields) == 0 || b.Props == nil {
			continue
		}

		for _, f := range fields {
			if f.List {
				items := b.Props.Strings(f.Name)
				if len(items) == 0 {
					continue
				}
				changed := false
				for i := range items {
					if text, ok := translations[MapKey(id, TranslationKey(f.Name, i))]; ok && text != "" {
						items[i] = text
						changed = true
					}
				}
				if changed {
					b.Props[f.Name] = toAnySlice(items)
				}
				continue
			}

			if text, ok := translations[MapKey(id, TranslationKey(f.Name, 0))]; ok && text != "" {
				b.Props[f.Name] = text
			}
		}
	}

	return out
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
