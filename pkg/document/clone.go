package document

// Clone returns a structurally independent deep copy of the document.
// Mutating the copy never affects the original, so one parsed document can
// back multiple concurrent renders.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := &Document{
		ChildrenIDs: make([]string, len(d.ChildrenIDs)),
		Blocks:      make(map[string]*Block, len(d.Blocks)),
	}
	copy(out.ChildrenIDs, d.ChildrenIDs)

	for id, b := range d.Blocks {
		out.Blocks[id] = b.Clone()
	}

	return out
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	return &Block{
		Type:  b.Type,
		Props: cloneMap(b.Props),
		Style: cloneMap(b.Style),
	}
}

func cloneMap[M ~map[string]any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
