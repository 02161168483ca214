package cache

import (
	"container/list"
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a string-keyed TTL cache with a bounded entry count.
type Cache[V any] struct {
	mu    sync.Mutex
	items map[string]*list.Element
	// order holds entries by creation time: Front = oldest, Back = newest.
	order *list.List

	maxSize    int
	defaultTTL time.Duration
	now        func() time.Time

	// generation is bumped by Clear so in-flight computations started
	// before the clear do not repopulate the cache.
	generation uint64
	group      singleflight.Group

	stats Stats

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type entry[V any] struct {
	key       string
	value     V
	createdAt time.Time
	expiresAt time.Time
}

// expired reports whether the entry is no longer visible at now.
// A zero TTL yields expiresAt == createdAt, so the entry is expired on the
// very next read.
func (e *entry[V]) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// New creates a cache. If a cleanup interval is configured, a janitor
// goroutine is started; call Close to stop it.
func New[V any](optFns ...Option) *Cache[V] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Cache[V]{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		maxSize:    o.maxSize,
		defaultTTL: o.defaultTTL,
		now:        o.now,
	}

	if o.cleanupInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.wg.Add(1)
		go c.janitor(ctx, o.cleanupInterval)
	}

	return c
}

// Get returns the value stored under key. The boolean is false when the key
// is absent or its entry has expired; an expired entry is removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lookupLocked(key)
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

func (c *Cache[V]) lookupLocked(key string) (V, bool) {
	var zero V

	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}

	e := elem.Value.(*entry[V])
	if e.expired(c.now()) {
		c.removeElementLocked(elem)
		c.stats.Expirations++
		return zero, false
	}

	return e.value, true
}

// Set stores value under key using the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key, replacing any previous entry.
// A negative ttl is treated as 0, which makes the entry expire immediately.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(key, value, ttl)
}

func (c *Cache[V]) setLocked(key string, value V, ttl time.Duration) {
	ttl = max(ttl, 0)
	now := c.now()

	e := &entry[V]{
		key:       key,
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}

	if elem, ok := c.items[key]; ok {
		// Full replacement: the entry is re-created, so it moves to the
		// newest end of the creation order.
		elem.Value = e
		c.order.MoveToBack(elem)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldestLocked()
	}

	c.items[key] = c.order.PushBack(e)
}

// GetOrCompute returns the cached value for key, or calls fn, stores its
// result with the default TTL and returns it. Concurrent callers for the
// same key share a single call to fn. Errors from fn are returned and never
// cached.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, fn func(context.Context) (V, error)) (V, error) {
	var zero V

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	v, ok := c.lookupLocked(key)
	if ok {
		c.stats.Hits++
		c.mu.Unlock()
		return v, nil
	}
	c.stats.Misses++
	gen := c.generation
	c.mu.Unlock()

	flight := strconv.FormatUint(gen, 10) + "\x00" + key

	res, err, _ := c.group.Do(flight, func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation == gen {
			c.setLocked(key, v, c.defaultTTL)
		}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return zero, err
	}

	v, _ = res.(V)
	return v, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElementLocked(elem)
	return true
}

// Cleanup removes every entry that has expired and returns how many were
// removed.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deleteExpiredLocked(c.now())
}

func (c *Cache[V]) deleteExpiredLocked(now time.Time) int {
	removed := 0
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		if elem.Value.(*entry[V]).expired(now) {
			c.removeElementLocked(elem)
			removed++
		}
		elem = next
	}
	c.stats.Expirations += uint64(removed)
	return removed
}

// Clear removes all entries. Counters are kept.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.order.Init()
	c.generation++
}

// Len returns the number of stored entries, including expired entries that
// have not been removed yet.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Size = c.order.Len()
	s.MaxSize = c.maxSize
	return s
}

// Close stops the janitor, if any. It is safe to call more than once, and
// the cache stays usable afterwards with lazy expiration only.
func (c *Cache[V]) Close() error {
	c.closeOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.wg.Wait()
	})
	return nil
}

func (c *Cache[V]) evictOldestLocked() {
	if elem := c.order.Front(); elem != nil {
		c.removeElementLocked(elem)
		c.stats.Evictions++
	}
}

func (c *Cache[V]) removeElementLocked(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
}
