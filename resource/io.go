package resource

import (
	"context"
	"io"
)

// writeChunk bounds how much a throttled Write hands to the underlying
// writer at once, so a cancelled context stops a large write part way.
const writeChunk = 64 << 10

// NewRateLimitedWriter charges l for every byte written to w. A nil l
// returns w itself. Writes stop with ctx's error once it is done; the
// returned count covers what already reached w.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, l *IOLimiter) io.Writer {
	if l == nil {
		return w
	}
	return &throttledWriter{ctx: ctx, dst: w, limiter: l}
}

type throttledWriter struct {
	ctx     context.Context
	dst     io.Writer
	limiter *IOLimiter
}

func (t *throttledWriter) Write(p []byte) (int, error) {
	var written int
	for len(p) > 0 {
		chunk := p[:min(len(p), writeChunk)]
		if err := t.limiter.AcquireIO(t.ctx, len(chunk)); err != nil {
			return written, err
		}
		n, err := t.dst.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}

// NewRateLimitedReader charges l for every byte read from r. A nil l
// returns r itself. Reads are charged after the fact, for the bytes that
// actually arrived.
func NewRateLimitedReader(ctx context.Context, r io.Reader, l *IOLimiter) io.Reader {
	if l == nil {
		return r
	}
	return &throttledReader{ctx: ctx, src: r, limiter: l}
}

type throttledReader struct {
	ctx     context.Context
	src     io.Reader
	limiter *IOLimiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 {
		if lerr := t.limiter.AcquireIO(t.ctx, n); lerr != nil {
			return n, lerr
		}
	}
	return n, err
}
