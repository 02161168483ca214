package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIOLimiter_Unlimited(t *testing.T) {
	assert.Nil(t, NewIOLimiter(0))
	assert.Nil(t, NewIOLimiter(-1))

	var l *IOLimiter
	assert.NoError(t, l.AcquireIO(context.Background(), 1<<20))
}

func TestIOLimiter_LargeRequestIsChunked(t *testing.T) {
	l := NewIOLimiter(1 << 20)

	// Larger than the burst; a single WaitN would fail outright.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.AcquireIO(ctx, (1<<20)+10))
}

func TestIOLimiter_Cancelled(t *testing.T) {
	l := NewIOLimiter(10)
	require.NoError(t, l.AcquireIO(context.Background(), 10)) // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.AcquireIO(ctx, 10))
}

func TestRateLimitedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &buf, NewIOLimiter(1<<20))

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())

	assert.Same(t, &buf, NewRateLimitedWriter(context.Background(), &buf, nil))
}

func TestRateLimitedReader(t *testing.T) {
	r := NewRateLimitedReader(context.Background(), bytes.NewReader([]byte("statute")), NewIOLimiter(1<<20))

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "statute", string(data))
}

func TestRateLimitedReader_Cancelled(t *testing.T) {
	l := NewIOLimiter(4)
	require.NoError(t, l.AcquireIO(context.Background(), 4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := io.ReadAll(NewRateLimitedReader(ctx, bytes.NewReader([]byte("statute")), l))
	assert.ErrorIs(t, err, context.Canceled)
}
