package directive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/directive"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/placeholder"
)

func TestProcessLoops(t *testing.T) {
	t.Parallel()

	t.Run("scalar elements with index", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": []any{"a", "b"}}
		got := directive.Process("{{#each items}}{{@index}}:{{.}}{{/each}}", data)
		require.Equal(t, "0:a1:b", got)
	})

	t.Run("empty array removes block", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": []any{}}
		require.Equal(t, "", directive.Process("{{#each items}}x{{/each}}", data))
	})

	t.Run("missing path removes block", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "before after", directive.Process("before {{#each ghost}}x{{/each}}after", nil))
	})

	t.Run("non-array path removes block", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": "not a list"}
		require.Equal(t, "", directive.Process("{{#each items}}x{{/each}}", data))
	})

	t.Run("object elements merge into context", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{
			"shop": "Acme",
			"products": []any{
				map[string]any{"name": "Pen", "price": 1.5},
				map[string]any{"name": "Ink", "price": 8},
			},
		}
		got := directive.Process("{{#each products}}{{name}}@{{price}} from {{shop}};{{/each}}", data)
		require.Equal(t, "Pen@1.5 from Acme;Ink@8 from Acme;", got)
	})

	t.Run("this resolves element fields", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"users": []any{map[string]any{"name": "Ann"}}}
		got := directive.Process("{{#each users}}{{this.name}}{{/each}}", data)
		require.Equal(t, "Ann", got)
	})

	t.Run("loop metadata", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": []any{"x", "y", "z"}}
		got := directive.Process("{{#each items}}{{@first}},{{@last}},{{@length}};{{/each}}", data)
		require.Equal(t, "true,false,3;false,false,3;false,true,3;", got)
	})

	t.Run("nested loops", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{
			"rows": []any{
				map[string]any{"cells": []any{"a", "b"}},
				map[string]any{"cells": []any{"c"}},
			},
		}
		got := directive.Process("{{#each rows}}[{{#each cells}}{{.}}{{/each}}]{{/each}}", data)
		require.Equal(t, "[ab][c]", got)
	})

	t.Run("string slice values iterate", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"tags": []string{"go", "email"}}
		got := directive.Process("{{#each tags}}<{{.}}>{{/each}}", data)
		require.Equal(t, "<go><email>", got)
	})

	t.Run("unclosed loop stays literal", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": []any{"a"}}
		got := directive.Process("{{#each items}}x no closer", data)
		require.Equal(t, "{{#each items}}x no closer", got)
	})
}

func TestProcessConditionals(t *testing.T) {
	t.Parallel()

	t.Run("then and else branches", func(t *testing.T) {
		t.Parallel()

		tmpl := "{{#if score > 10}}high{{else}}low{{/if}}"

		require.Equal(t, "high", directive.Process(tmpl, map[string]any{"score": float64(42)}))
		require.Equal(t, "low", directive.Process(tmpl, map[string]any{"score": float64(3)}))
		require.Equal(t, "low", directive.Process(tmpl, map[string]any{}))
	})

	t.Run("no else renders empty on false", func(t *testing.T) {
		t.Parallel()

		got := directive.Process("a{{#if ghost}}x{{/if}}b", nil)
		require.Equal(t, "ab", got)
	})

	t.Run("only chosen branch is processed", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"ok": true, "name": "Ann"}
		got := directive.Process("{{#if ok}}hi {{name}}{{else}}bye {{name}}{{/if}}", data)
		require.Equal(t, "hi Ann", got)
	})

	t.Run("nested conditionals", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"outer": true, "inner": false}
		tmpl := "{{#if outer}}o{{#if inner}}i{{else}}ni{{/if}}{{else}}no{{/if}}"
		require.Equal(t, "oni", directive.Process(tmpl, data))
	})

	t.Run("else belongs to the right block", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"outer": false, "inner": true}
		tmpl := "{{#if outer}}{{#if inner}}a{{else}}b{{/if}}{{else}}c{{/if}}"
		require.Equal(t, "c", directive.Process(tmpl, data))
	})

	t.Run("unclosed if stays literal", func(t *testing.T) {
		t.Parallel()

		got := directive.Process("{{#if ok}}dangling", map[string]any{"ok": true})
		require.Equal(t, "{{#if ok}}dangling", got)
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	t.Run("loops then conditionals then variables", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{
			"user": map[string]any{"name": "Ann"},
			"cart": []any{
				map[string]any{"title": "Pen", "sale": true},
				map[string]any{"title": "Ink", "sale": false},
			},
		}
		tmpl := "Hi {{user.name}}! {{#each cart}}{{title}}{{#if sale}}*{{/if}} {{/each}}"
		require.Equal(t, "Hi Ann! Pen* Ink ", directive.Process(tmpl, data))
	})

	t.Run("conditional inside loop sees element", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"nums": []any{float64(1), float64(20)}}
		tmpl := "{{#each nums}}{{#if . > 10}}big{{else}}small{{/if}},{{/each}}"
		require.Equal(t, "small,big,", directive.Process(tmpl, data))
	})

	t.Run("replace options reach loop bodies", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"items": []any{map[string]any{"a": 1}}}
		got := directive.Process("{{#each items}}{{missing}}{{/each}}", data,
			placeholder.WithMissingHandler(func(name string) string { return "[" + name + "]" }))
		require.Equal(t, "[missing]", got)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "nothing here", directive.Process("nothing here", nil))
	})
}
