package translation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a Store backed by Postgres via pgx.
//
// Expected schema (migrations are owned by the application):
//
//	CREATE TABLE email_template_translations (
//	    template_id     TEXT NOT NULL,
//	    language_code   TEXT NOT NULL,
//	    block_id        TEXT NOT NULL,
//	    translation_key TEXT NOT NULL,
//	    translated_text TEXT NOT NULL DEFAULT '',
//	    status          TEXT NOT NULL DEFAULT 'pending',
//	    PRIMARY KEY (template_id, language_code, block_id, translation_key)
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Store on top of an existing connection pool.
// The pool lifecycle is owned by the caller.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Query returns every translation row for one template and language.
func (s *PostgresStore) Query(ctx context.Context, templateID, languageCode string) ([]Translation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT block_id, translation_key, translated_text, status
		FROM email_template_translations
		WHERE template_id = $1 AND language_code = $2
		ORDER BY block_id, translation_key`,
		templateID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("translation: query: %w", err)
	}
	defer rows.Close()

	var out []Translation
	for rows.Next() {
		t := Translation{TemplateID: templateID, LanguageCode: languageCode}
		var status string
		if err := rows.Scan(&t.BlockID, &t.TranslationKey, &t.TranslatedText, &status); err != nil {
			return nil, fmt.Errorf("translation: scan: %w", err)
		}
		t.Status = Status(status)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("translation: rows: %w", err)
	}

	return out, nil
}

// UpsertPending inserts a pending row; the conflict target guarantees an
// existing row is never overwritten.
func (s *PostgresStore) UpsertPending(ctx context.Context, templateID, languageCode, blockID, translationKey string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO email_template_translations
			(template_id, language_code, block_id, translation_key, translated_text, status)
		VALUES ($1, $2, $3, $4, '', 'pending')
		ON CONFLICT (template_id, language_code, block_id, translation_key) DO NOTHING`,
		templateID, languageCode, blockID, translationKey)
	if err != nil {
		return fmt.Errorf("translation: upsert pending: %w", err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
