// Package rediscache caches asynchronous rule outcomes in Redis so that
// several processes evaluating the same expensive rule share one result
// until the TTL elapses.
//
// The package wraps the go-redis client behind the narrow Store interface;
// production code passes NewRedisStore(client) while tests substitute an
// in-memory fake. Cached outcomes expire on their own — nothing here is
// durable state.
//
// # Usage
//
//	client, _ := redis.ParseURL("redis://localhost:6379/0")
//	store := rediscache.NewRedisStore(redis.NewClient(client))
//
//	cached, err := rediscache.New(store, expensiveRule, 5*time.Minute)
//	if err != nil {
//	    // nil store or rule
//	}
//	broken, err := cached.IsBroken(ctx, rctx)
//
// # Error Handling
//
// Store failures propagate to the caller and abort the evaluation; the
// wrapper never falls back to re-running the inner rule against a broken
// store, so a Redis outage surfaces loudly instead of as silent load.
package rediscache
