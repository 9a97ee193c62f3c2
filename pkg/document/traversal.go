package document

import "strconv"

// ChildrenOf returns the child ids of a block in traversal order: direct
// childrenIds first, then each column's childrenIds left to right.
// Unknown ids return nil.
func (d *Document) ChildrenOf(id string) []string {
	b, ok := d.Blocks[id]
	if !ok || b.Props == nil {
		return nil
	}

	ids := b.Props.ChildrenIDs()
	for _, col := range b.Props.Columns() {
		ids = append(ids, col...)
	}
	return ids
}

// Walk visits every reachable block depth-first, roots in childrenIds order,
// children before siblings, columns left to right. The callback returns
// false to stop the walk early. Dangling ids are skipped silently.
func (d *Document) Walk(fn func(id string, b *Block) bool) {
	for _, id := range d.ChildrenIDs {
		if !d.walk(id, fn) {
			return
		}
	}
}

func (d *Document) walk(id string, fn func(id string, b *Block) bool) bool {
	b, ok := d.Blocks[id]
	if !ok {
		return true
	}
	if !fn(id, b) {
		return false
	}
	for _, child := range d.ChildrenOf(id) {
		if !d.walk(child, fn) {
			return false
		}
	}
	return true
}

// TextField describes one translatable text location within a block type.
// List fields hold one string per element; every element gets its own
// translation key.
type TextField struct {
	Name string
	List bool
}

// textFields maps each block type to its human-text fields in a fixed order.
// Container, columns, divider, spacer, avatar, social links and raw html
// blocks carry no translatable text.
var textFields = map[BlockType][]TextField{
	BlockText:    {{Name: "text"}},
	BlockHeading: {{Name: "text"}},
	BlockButton:  {{Name: "text"}},
	BlockList:    {{Name: "items", List: true}},
	BlockHero:    {{Name: "title"}, {Name: "subtitle"}, {Name: "buttonText"}},
	BlockQuote:   {{Name: "text"}, {Name: "author"}},
}

// TextFields returns the ordered translatable text fields for a block type.
// Types that never yield translatable items return nil.
func TextFields(t BlockType) []TextField {
	return textFields[t]
}

// TranslationKey builds the deterministic key for a text field occurrence
// within a block: the field name plus the element index (0 for scalar
// fields).
func TranslationKey(field string, index int) string {
	return field + "_" + strconv.Itoa(index)
}

// MapKey builds the lookup key used by translation maps:
// "<blockId>_<translationKey>".
func MapKey(blockID, translationKey string) string {
	return blockID + "_" + translationKey
}
