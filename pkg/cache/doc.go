// Package cache provides the TTL cache behind translation resolution, with
// in-memory and Redis backends sharing one generic interface.
//
// The cache is a pure memoization layer: it must be safe to clear at any
// moment without affecting correctness, only performance. Entries are keyed
// by caller-chosen strings; DeletePrefix supports removing a whole family
// of keys at once (every cached language of one template).
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: entry never expires
//
// # In-Memory
//
//	c := cache.NewMemory[map[string]string](
//	    cache.WithDefaultTTL(time.Hour),
//	    cache.WithCleanupInterval(time.Minute),
//	)
//	defer c.Close()
//
// # Redis
//
// Use [NewRedis] when several processes should share cached translation
// maps. Values are serialized with the configured [Marshaler] (JSON when
// nil):
//
//	c := cache.NewRedis[map[string]string](client, nil,
//	    cache.WithPrefix("tpl-translations"),
//	)
//
// # Stampede prevention
//
// [Flight.GetOrSet] computes a missing value at most once per key across
// concurrent callers, using singleflight. The zero Flight is ready to use;
// give each cache its own Flight so unrelated caches never share a
// computation:
//
//	var flight cache.Flight[map[string]string]
//
//	m, err := flight.GetOrSet(ctx, c, key, func(ctx context.Context) (map[string]string, time.Duration, error) {
//	    return loadFromStore(ctx)
//	})
package cache
