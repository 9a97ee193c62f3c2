package translation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore is a read-only Store backed by YAML files in an fs.FS, useful
// for fixtures, offline previews, and templates shipped with a binary.
//
// File convention: {templateID}/{languageCode}.yaml (or .yml), e.g.
//
//	tpl_welcome/fr.yaml:
//	  translations:
//	    - blockId: blk_1
//	      key: text_0
//	      text: "Bonjour {{user.name}}"
//	      status: translated
//
// A missing file means no rows, not an error. UpsertPending records gaps in
// memory only; the backing files are never written.
type FileStore struct {
	fsys    fs.FS
	mu      sync.Mutex
	pending map[string][]Translation
}

type translationFile struct {
	Translations []struct {
		BlockID string `yaml:"blockId"`
		Key     string `yaml:"key"`
		Text    string `yaml:"text"`
		Status  string `yaml:"status"`
	} `yaml:"translations"`
}

// NewFileStore creates a read-only store over the given filesystem.
func NewFileStore(fsys fs.FS) *FileStore {
	return &FileStore{
		fsys:    fsys,
		pending: make(map[string][]Translation),
	}
}

// Query reads {templateID}/{languageCode}.yaml and returns its rows,
// followed by any pending rows recorded in this process.
func (s *FileStore) Query(_ context.Context, templateID, languageCode string) ([]Translation, error) {
	out, err := s.fileRows(templateID, languageCode)
	if err != nil {
		return nil, err
	}
	return append(out, s.pendingRows(templateID, languageCode)...), nil
}

// UpsertPending records the gap in memory; files are never written. The
// backing files are read-only, so only the pending map needs the lock held
// across the existence check and the append.
func (s *FileStore) UpsertPending(_ context.Context, templateID, languageCode, blockID, translationKey string) error {
	fromFile, err := s.fileRows(templateID, languageCode)
	if err != nil {
		return err
	}
	for _, row := range fromFile {
		if row.BlockID == blockID && row.TranslationKey == translationKey {
			return nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := storeKey(templateID, languageCode)
	for _, row := range s.pending[key] {
		if row.BlockID == blockID && row.TranslationKey == translationKey {
			return nil
		}
	}
	s.pending[key] = append(s.pending[key], Translation{
		TemplateID:     templateID,
		LanguageCode:   languageCode,
		BlockID:        blockID,
		TranslationKey: translationKey,
		Status:         StatusPending,
	})
	return nil
}

// fileRows parses {templateID}/{languageCode}.yaml without touching the
// pending map. A missing file yields no rows.
func (s *FileStore) fileRows(templateID, languageCode string) ([]Translation, error) {
	data, err := s.read(templateID, languageCode)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var file translationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("translation: parsing %s/%s: %w", templateID, languageCode, err)
	}

	out := make([]Translation, 0, len(file.Translations))
	for _, row := range file.Translations {
		status := Status(row.Status)
		if status == "" {
			status = StatusTranslated
		}
		out = append(out, Translation{
			TemplateID:     templateID,
			LanguageCode:   languageCode,
			BlockID:        row.BlockID,
			TranslationKey: row.Key,
			TranslatedText: row.Text,
			Status:         status,
		})
	}
	return out, nil
}

func (s *FileStore) read(templateID, languageCode string) ([]byte, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		data, err := fs.ReadFile(s.fsys, templateID+"/"+languageCode+ext)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("translation: reading %s/%s%s: %w", templateID, languageCode, ext, err)
		}
	}
	return nil, fs.ErrNotExist
}

func (s *FileStore) pendingRows(templateID, languageCode string) []Translation {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.pending[storeKey(templateID, languageCode)]
	out := make([]Translation, len(rows))
	copy(out, rows)
	return out
}

var _ Store = (*FileStore)(nil)
