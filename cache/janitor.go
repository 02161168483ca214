package cache

import (
	"context"
	"time"
)

// janitor periodically sweeps expired entries until ctx is cancelled.
func (c *Cache[V]) janitor(ctx context.Context, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Cleanup()
		}
	}
}
