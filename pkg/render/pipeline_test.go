package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/markup"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/render"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/translation"
)

// stubRenderer renders text blocks as bare paragraphs, enough to observe
// translation and variable effects in pipeline output.
type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(doc *document.Document) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	var sb strings.Builder
	doc.Walk(func(_ string, b *document.Block) bool {
		if b.Type == document.BlockText {
			sb.WriteString("<p>" + b.Props.String("text") + "</p>")
		}
		return true
	})
	return sb.String(), nil
}

type erroringStore struct{}

func (erroringStore) Query(context.Context, string, string) ([]translation.Translation, error) {
	return nil, errors.New("store down")
}

func (erroringStore) UpsertPending(context.Context, string, string, string, string) error {
	return errors.New("store down")
}

func greetingDoc() *document.Document {
	return &document.Document{
		ChildrenIDs: []string{"blk1", "blk2"},
		Blocks: map[string]*document.Block{
			"blk1": {Type: document.BlockText, Props: document.Props{"text": "Hello {{user.name}}"}},
			"blk2": {Type: document.BlockText, Props: document.Props{"text": "Bye"}},
		},
	}
}

func TestPipelineRender(t *testing.T) {
	t.Parallel()

	t.Run("variables and plain text", func(t *testing.T) {
		t.Parallel()

		p := render.New(stubRenderer{})
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: map[string]any{"user": map[string]any{"name": "Ann"}},
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello Ann</p><p>Bye</p>", res.HTML)
		require.Equal(t, "Hello Ann\n\nBye", res.Text)
		require.Empty(t, res.MissingTranslations)
	})

	t.Run("skip variables leaves placeholders", func(t *testing.T) {
		t.Parallel()

		p := render.New(stubRenderer{})
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData:    map[string]any{"user": map[string]any{"name": "Ann"}},
			SkipVariables: true,
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello {{user.name}}</p><p>Bye</p>", res.HTML)
	})

	t.Run("no sample data leaves placeholders", func(t *testing.T) {
		t.Parallel()

		p := render.New(stubRenderer{})
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello {{user.name}}</p><p>Bye</p>", res.HTML)
	})

	t.Run("renderer error is returned", func(t *testing.T) {
		t.Parallel()

		p := render.New(stubRenderer{err: errors.New("boom")})
		_, err := p.Render(context.Background(), greetingDoc(), render.Options{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	})
}

// The default renderer escapes text content, so directive syntax authored in
// block text reaches the directive pass with &gt;/&lt; in place of the
// comparison operators. The pipeline must still evaluate those conditions.
func TestPipelineMarkupConditionals(t *testing.T) {
	t.Parallel()

	doc := &document.Document{
		ChildrenIDs: []string{"blk1"},
		Blocks: map[string]*document.Block{
			"blk1": {Type: document.BlockText, Props: document.Props{
				"text": "{{#if score > 10}}high{{else}}low{{/if}}",
			}},
		},
	}

	p := render.New(markup.NewRenderer())

	res, err := p.Render(context.Background(), doc, render.Options{
		SampleData: map[string]any{"score": float64(15)},
	})
	require.NoError(t, err)
	require.Contains(t, res.HTML, "<p>high</p>")
	require.NotContains(t, res.HTML, "low")

	res, err = p.Render(context.Background(), doc, render.Options{
		SampleData: map[string]any{"score": float64(5)},
	})
	require.NoError(t, err)
	require.Contains(t, res.HTML, "<p>low</p>")
}

func TestPipelineTranslation(t *testing.T) {
	t.Parallel()

	data := map[string]any{"user": map[string]any{"name": "Ann"}}

	t.Run("target language applied and gaps logged", func(t *testing.T) {
		t.Parallel()

		store := translation.NewMemoryStore()
		store.Seed(translation.Translation{
			TemplateID: "tpl-target", LanguageCode: "fr",
			BlockID: "blk1", TranslationKey: "text_0",
			TranslatedText: "Bonjour {{user.name}}", Status: translation.StatusTranslated,
		})
		resolver := translation.NewResolver(store)
		defer resolver.Close()

		doc := greetingDoc()
		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), doc, render.Options{
			SampleData: data,
			Language:   "fr",
			TemplateID: "tpl-target",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Bonjour Ann</p><p>Bye</p>", res.HTML)
		require.Empty(t, res.MissingTranslations)

		// The untranslated block was recorded as a pending gap.
		rows, err := store.Query(context.Background(), "tpl-target", "fr")
		require.NoError(t, err)
		var gap bool
		for _, row := range rows {
			if row.BlockID == "blk2" && row.TranslationKey == "text_0" {
				gap = row.Status == translation.StatusPending
			}
		}
		require.True(t, gap)

		// Caller's document stays untouched.
		require.Equal(t, "Hello {{user.name}}", doc.Blocks["blk1"].Props.String("text"))
	})

	t.Run("fallback to default language adds one advisory", func(t *testing.T) {
		t.Parallel()

		store := translation.NewMemoryStore()
		store.Seed(translation.Translation{
			TemplateID: "tpl-fallback", LanguageCode: "en",
			BlockID: "blk1", TranslationKey: "text_0",
			TranslatedText: "Hello there {{user.name}}", Status: translation.StatusReviewed,
		})
		resolver := translation.NewResolver(store)
		defer resolver.Close()

		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "fr",
			TemplateID: "tpl-fallback",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello there Ann</p><p>Bye</p>", res.HTML)
		require.Len(t, res.MissingTranslations, 1)
		require.Contains(t, res.MissingTranslations[0], `"fr"`)
		require.Contains(t, res.MissingTranslations[0], `"en"`)
	})

	t.Run("no translations anywhere renders source", func(t *testing.T) {
		t.Parallel()

		resolver := translation.NewResolver(translation.NewMemoryStore())
		defer resolver.Close()

		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "fr",
			TemplateID: "tpl-none",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello Ann</p><p>Bye</p>", res.HTML)
		require.Len(t, res.MissingTranslations, 1)
	})

	t.Run("store failure degrades to untranslated", func(t *testing.T) {
		t.Parallel()

		resolver := translation.NewResolver(erroringStore{})
		defer resolver.Close()

		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "fr",
			TemplateID: "tpl-down",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello Ann</p><p>Bye</p>", res.HTML)
		require.Len(t, res.MissingTranslations, 1)
		require.Contains(t, res.MissingTranslations[0], "failed to load")
	})

	t.Run("default language skips translation", func(t *testing.T) {
		t.Parallel()

		resolver := translation.NewResolver(erroringStore{})
		defer resolver.Close()

		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "en",
			TemplateID: "tpl-skip",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello Ann</p><p>Bye</p>", res.HTML)
		require.Empty(t, res.MissingTranslations)
	})

	t.Run("missing template id skips translation", func(t *testing.T) {
		t.Parallel()

		resolver := translation.NewResolver(erroringStore{})
		defer resolver.Close()

		p := render.New(stubRenderer{}, render.WithTranslations(resolver))
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "fr",
		})
		require.NoError(t, err)
		require.Empty(t, res.MissingTranslations)
	})

	t.Run("no resolver configured yields advisory", func(t *testing.T) {
		t.Parallel()

		p := render.New(stubRenderer{})
		res, err := p.Render(context.Background(), greetingDoc(), render.Options{
			SampleData: data,
			Language:   "fr",
			TemplateID: "tpl-nores",
		})
		require.NoError(t, err)
		require.Equal(t, "<p>Hello Ann</p><p>Bye</p>", res.HTML)
		require.Len(t, res.MissingTranslations, 1)
	})
}
