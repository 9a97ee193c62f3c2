// Package redis opens Redis connections for the shared translation cache.
//
// Rendering processes that should observe the same cached translation maps
// point cache.NewRedis at a client opened here:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//	    return err
//	}
//	c := cache.NewRedis[map[string]string](client, nil,
//	    cache.WithPrefix("tpl-translations"),
//	)
package redis
