// Package resource throttles snapshot IO so that saving or restoring a large
// corpus does not saturate the disk shared with a serving process.
package resource

import (
	"context"

	"golang.org/x/time/rate"
)

// IOLimiter is a token bucket over bytes. A nil *IOLimiter never blocks.
type IOLimiter struct {
	limiter *rate.Limiter
	burst   int
}

// NewIOLimiter creates a limiter admitting bytesPerSec bytes per second
// with a one-second burst. It returns nil if bytesPerSec <= 0.
func NewIOLimiter(bytesPerSec int64) *IOLimiter {
	if bytesPerSec <= 0 {
		return nil
	}
	burst := int(min(bytesPerSec, int64(1<<30)))
	return &IOLimiter{
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), burst),
		burst:   burst,
	}
}

// AcquireIO waits until n bytes may be transferred or ctx is done.
// Requests larger than the burst are admitted in burst-sized pieces.
func (l *IOLimiter) AcquireIO(ctx context.Context, n int) error {
	if l == nil {
		return nil
	}
	for n > 0 {
		chunk := min(n, l.burst)
		if err := l.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
