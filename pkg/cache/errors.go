package cache

import "errors"

// Sentinel errors shared by every cache backend.
var (
	// ErrNotFound marks a key that is absent or has expired. Callers treat
	// it as a miss and recompute the translation map from the store.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed marks operations against a cache whose Close has already run.
	ErrClosed = errors.New("cache: closed")

	// ErrMarshal marks a translation map the marshaler could not serialize
	// for a byte-oriented backend.
	ErrMarshal = errors.New("cache: failed to marshal value")

	// ErrUnmarshal marks a stored payload that no longer decodes, e.g. a
	// Redis entry written with a different marshaler.
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")
)
