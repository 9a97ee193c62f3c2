package document

import (
	"encoding/json"
	"fmt"
)

// BlockType identifies the kind of a block in the email document tree.
type BlockType string

// Block type vocabulary supported by the builder.
const (
	BlockText        BlockType = "text"
	BlockHeading     BlockType = "heading"
	BlockButton      BlockType = "button"
	BlockImage       BlockType = "image"
	BlockSpacer      BlockType = "spacer"
	BlockDivider     BlockType = "divider"
	BlockContainer   BlockType = "container"
	BlockColumns     BlockType = "columns"
	BlockList        BlockType = "list"
	BlockHero        BlockType = "hero"
	BlockQuote       BlockType = "quote"
	BlockSocialLinks BlockType = "socialLinks"
	BlockHTML        BlockType = "html"
	BlockAvatar      BlockType = "avatar"
)

// Props carries the type-specific fields of a block: free text, string
// lists, nested child ids, or column arrays. The payload comes from the
// builder as JSON, so values are the usual decoded shapes (string, float64,
// bool, []any, map[string]any).
type Props map[string]any

// String returns the prop value as a string, or "" when absent or not a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns the prop value as a list of strings. Non-string elements
// are stringified; absent or non-list values yield nil.
func (p Props) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		if ss, ok := p[key].([]string); ok {
			out := make([]string, len(ss))
			copy(out, ss)
			return out
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out
}

// ChildrenIDs returns the block's direct child ids, if any.
func (p Props) ChildrenIDs() []string {
	return p.Strings("childrenIds")
}

// Columns returns the per-column child id lists of a columns block,
// left to right. Malformed column entries are skipped.
func (p Props) Columns() [][]string {
	raw, ok := p["columns"].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(raw))
	for _, c := range raw {
		col, ok := c.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Props(col).ChildrenIDs())
	}
	return out
}

// Block is a single node in the email document tree.
type Block struct {
	Type  BlockType      `json:"type"`
	Props Props          `json:"props,omitempty"`
	Style map[string]any `json:"style,omitempty"`
}

// Document is the full email document: an ordered list of root block ids
// plus a flat map from block id to block.
//
// Invariant (not enforced here): every id referenced by childrenIds or
// columns[].childrenIds exists as a key in Blocks, and the graph is a forest.
// Dangling references are tolerated by every operation in this package.
type Document struct {
	ChildrenIDs []string
	Blocks      map[string]*Block
}

// Block looks up a block by id.
func (d *Document) Block(id string) (*Block, bool) {
	b, ok := d.Blocks[id]
	return b, ok
}

// childrenIDsKey is the distinguished key naming the root block list in the
// builder's flat JSON shape.
const childrenIDsKey = "childrenIds"

// MarshalJSON encodes the document in the builder's flat shape: a single
// object holding "childrenIds" plus one entry per block id.
func (d *Document) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Blocks)+1)
	flat[childrenIDsKey] = d.ChildrenIDs
	for id, b := range d.Blocks {
		flat[id] = b
	}
	return json.Marshal(flat)
}

// UnmarshalJSON decodes the builder's flat shape.
func (d *Document) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("document: %w", err)
	}

	d.ChildrenIDs = nil
	d.Blocks = make(map[string]*Block, len(flat))

	for key, raw := range flat {
		if key == childrenIDsKey {
			if err := json.Unmarshal(raw, &d.ChildrenIDs); err != nil {
				return fmt.Errorf("document: childrenIds: %w", err)
			}
			continue
		}
		var b Block
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("document: block %q: %w", key, err)
		}
		d.Blocks[key] = &b
	}

	return nil
}
