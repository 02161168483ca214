// Package cache provides a generic in-memory TTL cache for memoizing
// expensive lookups such as repeated searches for the same query.
//
// # Expiration
//
// Every entry carries its own expiration time. Expiration is lazy: a Get on
// an expired entry reports a miss and removes the entry. Cleanup sweeps all
// expired entries on demand, and WithCleanupInterval starts an optional
// janitor that calls it periodically.
//
// # Eviction
//
// The cache holds at most MaxSize entries. When a new key would exceed the
// bound, the entry with the oldest creation time is evicted. Eviction order
// is FIFO by creation time, not LRU: reading an entry does not protect it.
// Overwriting a key replaces the entry and gives it a fresh creation time.
//
// # Usage
//
//	c := cache.New[[]lexical.Result](
//	    cache.WithMaxSize(100),
//	    cache.WithDefaultTTL(5*time.Minute),
//	)
//	defer c.Close()
//
//	results, err := c.GetOrCompute(ctx, query, func(ctx context.Context) ([]lexical.Result, error) {
//	    return idx.Search(query, 20), nil
//	})
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package cache
