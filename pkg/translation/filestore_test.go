package translation_test

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/translation"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"tpl_welcome/fr.yaml": &fstest.MapFile{Data: []byte(`
translations:
  - blockId: blk_1
    key: text_0
    text: "Bonjour {{user.name}}"
    status: translated
  - blockId: blk_2
    key: items_1
    text: "Deux"
    status: reviewed
  - blockId: blk_3
    key: text_0
    text: ""
    status: pending
`)},
		"tpl_welcome/de.yml": &fstest.MapFile{Data: []byte(`
translations:
  - blockId: blk_1
    key: text_0
    text: "Hallo"
`)},
		"tpl_welcome/it.yaml": &fstest.MapFile{Data: []byte("translations: [\n")},
	}

	t.Run("reads yaml rows", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		rows, err := store.Query(context.Background(), "tpl_welcome", "fr")
		require.NoError(t, err)
		require.Len(t, rows, 3)

		require.Equal(t, "blk_1", rows[0].BlockID)
		require.Equal(t, "text_0", rows[0].TranslationKey)
		require.Equal(t, "Bonjour {{user.name}}", rows[0].TranslatedText)
		require.Equal(t, translation.StatusTranslated, rows[0].Status)
		require.Equal(t, "tpl_welcome", rows[0].TemplateID)
		require.Equal(t, "fr", rows[0].LanguageCode)

		require.Equal(t, translation.StatusReviewed, rows[1].Status)
		require.Equal(t, translation.StatusPending, rows[2].Status)
	})

	t.Run("yml extension and default status", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		rows, err := store.Query(context.Background(), "tpl_welcome", "de")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, translation.StatusTranslated, rows[0].Status)
	})

	t.Run("missing file yields no rows", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		rows, err := store.Query(context.Background(), "tpl_welcome", "es")
		require.NoError(t, err)
		require.Empty(t, rows)

		rows, err = store.Query(context.Background(), "tpl_ghost", "fr")
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		_, err := store.Query(context.Background(), "tpl_welcome", "it")
		require.Error(t, err)
	})

	t.Run("pending rows live in memory only", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		ctx := context.Background()

		require.NoError(t, store.UpsertPending(ctx, "tpl_welcome", "es", "blk_9", "text_0"))
		require.NoError(t, store.UpsertPending(ctx, "tpl_welcome", "es", "blk_9", "text_0"))

		rows, err := store.Query(ctx, "tpl_welcome", "es")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, translation.StatusPending, rows[0].Status)

		// A tuple already covered by a file row is never duplicated.
		require.NoError(t, store.UpsertPending(ctx, "tpl_welcome", "fr", "blk_1", "text_0"))
		rows, err = store.Query(ctx, "tpl_welcome", "fr")
		require.NoError(t, err)
		require.Len(t, rows, 3)
	})

	t.Run("concurrent upserts record one pending row", func(t *testing.T) {
		t.Parallel()

		store := translation.NewFileStore(fsys)
		ctx := context.Background()

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				require.NoError(t, store.UpsertPending(ctx, "tpl_welcome", "pt", "blk_7", "text_0"))
			}()
		}
		wg.Wait()

		rows, err := store.Query(ctx, "tpl_welcome", "pt")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}

func TestMemoryStoreSeedReplaces(t *testing.T) {
	t.Parallel()

	store := translation.NewMemoryStore()
	store.Seed(translation.Translation{
		TemplateID: "t", LanguageCode: "fr",
		BlockID: "b", TranslationKey: "text_0",
		TranslatedText: "v1", Status: translation.StatusTranslated,
	})
	store.Seed(translation.Translation{
		TemplateID: "t", LanguageCode: "fr",
		BlockID: "b", TranslationKey: "text_0",
		TranslatedText: "v2", Status: translation.StatusReviewed,
	})

	rows, err := store.Query(context.Background(), "t", "fr")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "v2", rows[0].TranslatedText)
	require.Equal(t, translation.StatusReviewed, rows[0].Status)
}
