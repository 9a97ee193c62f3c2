package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/cache"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/logger"
)

// DefaultTTL is how long a resolved translation map stays cached before the
// next access recomputes it.
const DefaultTTL = time.Hour

// Resolver loads translation maps from a Store through a TTL cache.
//
// The cache is a pure memoization layer with last-writer-wins semantics:
// concurrent loads for the same key may both miss and both recompute, and
// clearing it at any moment affects performance only, never correctness.
type Resolver struct {
	store    Store
	cache    cache.Cache[map[string]string]
	flight   cache.Flight[map[string]string]
	ttl      time.Duration
	log      *slog.Logger
	ownCache bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache substitutes the cache backend (e.g. a Redis cache shared across
// processes, or a deterministic cache in tests). The caller keeps ownership
// of its lifecycle.
func WithCache(c cache.Cache[map[string]string]) ResolverOption {
	return func(r *Resolver) {
		r.cache = c
		r.ownCache = false
	}
}

// WithTTL sets the cache TTL for resolved maps.
// Default: 1 hour.
func WithTTL(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// WithLogger sets the logger for missing-translation and fallback events.
// Default: discard.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a Resolver over the given store. Without WithCache it
// owns an in-memory cache, released by Close.
func NewResolver(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		ttl:      DefaultTTL,
		log:      logger.NewNope(),
		ownCache: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cache.NewMemory[map[string]string]()
		r.ownCache = true
	}
	return r
}

// Load returns the translation map for one template and language: usable
// rows only, keyed "<blockId>_<translationKey>". Cache hits skip the store
// entirely; concurrent misses for the same key share one store query.
func (r *Resolver) Load(ctx context.Context, templateID, languageCode string) (map[string]string, error) {
	key := cacheKey(templateID, languageCode)

	return r.flight.GetOrSet(ctx, r.cache, key, func(ctx context.Context) (map[string]string, time.Duration, error) {
		rows, err := r.store.Query(ctx, templateID, languageCode)
		if err != nil {
			return nil, 0, fmt.Errorf("translation: loading %s/%s: %w", templateID, languageCode, err)
		}

		m := make(map[string]string, len(rows))
		for _, row := range rows {
			if row.Usable() {
				m[row.MapKey()] = row.TranslatedText
			}
		}

		r.log.DebugContext(ctx, "translations loaded",
			slog.String("template_id", templateID),
			slog.String("language", languageCode),
			slog.Int("rows", len(rows)),
			slog.Int("usable", len(m)))

		return m, r.ttl, nil
	})
}

// LogMissing records a translation gap as a pending row. It is idempotent
// (an existing row is never overwritten) and never fails rendering: store
// errors are logged and swallowed.
func (r *Resolver) LogMissing(ctx context.Context, templateID, languageCode, blockID, translationKey string) {
	if err := r.store.UpsertPending(ctx, templateID, languageCode, blockID, translationKey); err != nil {
		r.log.WarnContext(ctx, "failed to log missing translation",
			slog.String("template_id", templateID),
			slog.String("language", languageCode),
			slog.String("block_id", blockID),
			slog.String("key", translationKey),
			slog.Any("error", err))
	}
}

// Invalidate removes cached maps: the given languages of a template, or
// every language when none are named. Must be called by the authoring
// workflow whenever a translation is saved.
func (r *Resolver) Invalidate(ctx context.Context, templateID string, languageCodes ...string) error {
	if len(languageCodes) == 0 {
		return r.cache.DeletePrefix(ctx, templateID+":")
	}
	for _, lang := range languageCodes {
		if err := r.cache.Delete(ctx, cacheKey(templateID, lang)); err != nil {
			return err
		}
	}
	return nil
}

// Clear wipes the whole translation cache.
func (r *Resolver) Clear(ctx context.Context) error {
	return r.cache.Clear(ctx)
}

// Close releases the resolver-owned cache. Caches injected via WithCache
// are left to their owner.
func (r *Resolver) Close() error {
	if r.ownCache {
		return r.cache.Close()
	}
	return nil
}

func cacheKey(templateID, languageCode string) string {
	return templateID + ":" + languageCode
}
