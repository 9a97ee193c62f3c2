package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/extract"
)

func testDoc() *document.Document {
	return &document.Document{
		ChildrenIDs: []string{"hero", "body", "raw"},
		Blocks: map[string]*document.Block{
			"hero": {
				Type: document.BlockHero,
				Props: document.Props{
					"title":      "Hi {{user.name}}",
					"subtitle":   "Your plan: {{plan|default:\"free\"}}",
					"buttonText": "Start",
					"buttonUrl":  "https://example.com?u={{user.id}}",
				},
			},
			"body": {
				Type:  document.BlockContainer,
				Props: document.Props{"childrenIds": []any{"txt", "lst", "vars"}},
			},
			"txt": {
				Type:  document.BlockText,
				Props: document.Props{"text": "Thanks again, {{user.name}}!"},
			},
			"lst": {
				Type:  document.BlockList,
				Props: document.Props{"items": []any{"First point", "", "Third {{topic}}"}},
			},
			"vars": {
				Type:  document.BlockText,
				Props: document.Props{"text": "{{footer.note}}"},
			},
			"raw": {
				Type:  document.BlockHTML,
				Props: document.Props{"html": "<b>{{ignored.in.text.extraction}}</b>"},
			},
		},
	}
}

func TestTemplateVariables(t *testing.T) {
	t.Parallel()

	t.Run("unique names in traversal order", func(t *testing.T) {
		t.Parallel()

		// Within one block props serialize with sorted keys, so the hero
		// yields buttonUrl, subtitle, title in that order.
		names := extract.TemplateVariables(testDoc())
		require.Equal(t, []string{
			"user.id", "plan", "user.name",
			"topic", "footer.note", "ignored.in.text.extraction",
		}, names)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		doc := &document.Document{}
		require.Empty(t, extract.TemplateVariables(doc))
	})
}

func TestTranslatableText(t *testing.T) {
	t.Parallel()

	items := extract.TranslatableText(testDoc())

	byKey := make(map[string]extract.TranslatableItem, len(items))
	var keys []string
	for _, item := range items {
		key := document.MapKey(item.BlockID, item.TranslationKey)
		byKey[key] = item
		keys = append(keys, key)
	}

	// Traversal order, list elements by index; empty list items and
	// placeholder-only fields yield nothing.
	require.Equal(t, []string{
		"hero_title_0", "hero_subtitle_0", "hero_buttonText_0",
		"txt_text_0", "lst_items_0", "lst_items_2",
	}, keys)

	require.Equal(t, "Hi {{user.name}}", byKey["hero_title_0"].OriginalText)
	require.Equal(t, document.BlockHero, byKey["hero_title_0"].BlockType)
	require.Equal(t, "hero title", byKey["hero_title_0"].Context)
	require.Equal(t, "Third {{topic}}", byKey["lst_items_2"].OriginalText)
	require.Equal(t, "list items", byKey["lst_items_2"].Context)
}

func TestTranslatableTextSkipsPlaceholderOnly(t *testing.T) {
	t.Parallel()

	doc := &document.Document{
		ChildrenIDs: []string{"a", "b"},
		Blocks: map[string]*document.Block{
			"a": {Type: document.BlockText, Props: document.Props{"text": "{{only.vars}} {{more}}"}},
			"b": {Type: document.BlockText, Props: document.Props{"text": "   "}},
		},
	}
	require.Empty(t, extract.TranslatableText(doc))
}

func TestValidateVariables(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"user": map[string]any{"name": "Ann"},
		"plan": "pro",
	}

	valid, invalid := extract.ValidateVariables(
		[]string{"user.name", "plan", "user.phone", "ghost"}, data)

	require.Equal(t, []string{"user.name", "plan"}, valid)
	require.Equal(t, []string{"user.phone", "ghost"}, invalid)
}
