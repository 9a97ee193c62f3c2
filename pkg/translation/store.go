package translation

import (
	"context"
	"sync"
)

// Store is the persistence boundary for translation rows. Implementations
// must be safe for concurrent use.
type Store interface {
	// Query returns every translation row for one template and language,
	// regardless of status. A template or language with no rows yields an
	// empty slice, not an error.
	Query(ctx context.Context, templateID, languageCode string) ([]Translation, error)

	// UpsertPending records a detected translation gap. It inserts a
	// pending row with empty text when none exists for the
	// (templateID, languageCode, blockID, translationKey) tuple and must
	// never overwrite an existing row, whatever its status.
	UpsertPending(ctx context.Context, templateID, languageCode, blockID, translationKey string) error
}

// MemoryStore is an in-memory Store for tests and single-process authoring
// tools. Rows keep insertion order per (template, language) pair.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string][]Translation // key: templateID + "\x00" + languageCode
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string][]Translation)}
}

// Seed inserts rows directly, replacing any existing row for the same
// (blockID, translationKey) tuple.
func (s *MemoryStore) Seed(rows ...Translation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		key := storeKey(row.TemplateID, row.LanguageCode)
		replaced := false
		for i, existing := range s.rows[key] {
			if existing.BlockID == row.BlockID && existing.TranslationKey == row.TranslationKey {
				s.rows[key][i] = row
				replaced = true
				break
			}
		}
		if !replaced {
			s.rows[key] = append(s.rows[key], row)
		}
	}
}

// Query returns the rows for one template and language.
func (s *MemoryStore) Query(_ context.Context, templateID, languageCode string) ([]Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.rows[storeKey(templateID, languageCode)]
	out := make([]Translation, len(rows))
	copy(out, rows)
	return out, nil
}

// UpsertPending inserts a pending row unless one already exists for the
// tuple; existing rows are never touched.
func (s *MemoryStore) UpsertPending(_ context.Context, templateID, languageCode, blockID, translationKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey(templateID, languageCode)
	for _, existing := range s.rows[key] {
		if existing.BlockID == blockID && existing.TranslationKey == translationKey {
			return nil
		}
	}

	s.rows[key] = append(s.rows[key], Translation{
		TemplateID:     templateID,
		LanguageCode:   languageCode,
		BlockID:        blockID,
		TranslationKey: translationKey,
		Status:         StatusPending,
	})
	return nil
}

func storeKey(templateID, languageCode string) string {
	return templateID + "\x00" + languageCode
}

var _ Store = (*MemoryStore)(nil)
