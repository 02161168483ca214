package cache

import "time"

const (
	// DefaultMaxSize is the entry bound used when no positive size is configured.
	DefaultMaxSize = 100
	// DefaultTTL is the time-to-live applied by Set.
	DefaultTTL = 5 * time.Minute
)

type options struct {
	maxSize         int
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

func defaultOptions() options {
	return options{
		maxSize:    DefaultMaxSize,
		defaultTTL: DefaultTTL,
		now:        time.Now,
	}
}

// Option configures a Cache.
type Option func(*options)

// WithMaxSize sets the maximum number of entries.
// Values <= 0 keep DefaultMaxSize.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithDefaultTTL sets the TTL used by Set. Negative values are clamped to 0.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.defaultTTL = max(ttl, 0)
	}
}

// WithCleanupInterval starts a background janitor that removes expired
// entries every d. If d <= 0 the janitor is disabled and expiration is
// purely lazy.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) {
		o.cleanupInterval = d
	}
}

// WithClock replaces time.Now as the cache's time source.
// Mostly useful in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
