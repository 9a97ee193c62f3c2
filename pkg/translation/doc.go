// Package translation resolves per-template, per-language translation maps
// for the rendering pipeline.
//
// Translations live in a Store (Postgres, YAML fixtures, or in-memory). The
// Resolver sits in front of the store with a TTL cache keyed by
// (templateID, languageCode); only rows whose status is translated or
// reviewed produce usable entries; pending rows and empty text are known
// gaps, not content.
//
//	resolver := translation.NewResolver(store,
//	    translation.WithTTL(time.Hour),
//	    translation.WithLogger(log),
//	)
//	defer resolver.Close()
//
//	m, err := resolver.Load(ctx, "tpl_42", "fr")
//
// Missing-translation logging is idempotent and never breaks rendering:
// LogMissing swallows store errors after logging them, and a row that has
// already been translated is never overwritten with a pending one.
//
// The authoring workflow must call Invalidate whenever it saves a
// translation, or readers may observe stale maps for up to the TTL.
package translation
