package lexis

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hupe1980/lexis/cache"
	"github.com/hupe1980/lexis/lexical"
	"github.com/hupe1980/lexis/lexical/analysis"
	"github.com/hupe1980/lexis/lexical/fulltext"
	"github.com/hupe1980/lexis/lexical/highlight"
	"github.com/hupe1980/lexis/resource"
	"github.com/hupe1980/lexis/snapshot"
)

// Library combines the full-text index with a memoizing result cache.
// All methods are safe for concurrent use.
type Library struct {
	analyzer     *analysis.Analyzer
	index        *fulltext.Index
	results      *cache.Cache[[]lexical.Result] // nil when caching is disabled
	logger       *Logger
	metrics      MetricsCollector
	ioLimiter    *resource.IOLimiter // nil when unthrottled
	defaultLimit int
	closed       atomic.Bool
}

// Statistics combines index and cache counters.
type Statistics struct {
	lexical.Statistics
	Cache cache.Stats `json:"cache"`
}

// New creates a Library.
func New(optFns ...Option) (*Library, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	analyzer := analysis.New(o.analyzerOptions...)

	l := &Library{
		analyzer: analyzer,
		index: fulltext.New(
			fulltext.WithAnalyzer(analyzer),
			fulltext.WithLogger(o.logger.Logger),
		),
		logger:       o.logger,
		metrics:      o.metricsCollector,
		ioLimiter:    resource.NewIOLimiter(o.ioLimit),
		defaultLimit: o.defaultLimit,
	}
	if !o.cacheDisabled {
		l.results = cache.New[[]lexical.Result](o.cacheOptions...)
	}

	return l, nil
}

// IndexArticles adds or replaces documents and invalidates cached results.
func (l *Library) IndexArticles(ctx context.Context, docs []lexical.Document) (lexical.IndexReport, error) {
	if err := l.checkOpen(ctx); err != nil {
		return lexical.IndexReport{}, err
	}

	start := time.Now()
	report := l.index.IndexArticles(docs)
	l.invalidate()

	l.metrics.RecordIndex(report.Indexed, report.Skipped, time.Since(start))
	l.logger.LogIndex(ctx, report)

	return report, nil
}

// Search returns up to limit documents ranked by relevance. A non-positive
// limit selects the configured default. Identical queries, after
// normalization, are served from the result cache until it expires or the
// index changes.
//
// The returned slice is owned by the caller; the Matches slices inside it
// are shared with the cache and must not be modified.
func (l *Library) Search(ctx context.Context, query string, limit int) ([]lexical.Result, error) {
	if err := l.checkOpen(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = l.defaultLimit
	}

	start := time.Now()
	results, err := l.search(ctx, query, limit)
	l.metrics.RecordSearch(len(results), time.Since(start), err)
	l.logger.LogSearch(ctx, query, limit, len(results), err)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (l *Library) search(ctx context.Context, query string, limit int) ([]lexical.Result, error) {
	tokens := l.analyzer.Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	if l.results == nil {
		l.metrics.RecordCacheLookup(false)
		return l.index.Search(query, limit), nil
	}

	computed := false
	results, err := l.results.GetOrCompute(ctx, cacheKey(limit, tokens), func(context.Context) ([]lexical.Result, error) {
		computed = true
		return l.index.Search(query, limit), nil
	})
	l.metrics.RecordCacheLookup(!computed)
	if err != nil {
		return nil, err
	}

	return slices.Clone(results), nil
}

// cacheKey identifies a search by its limit and the analyzed query, so
// queries differing only in case, accents, punctuation or stop words share
// an entry.
func cacheKey(limit int, tokens []string) string {
	return strconv.Itoa(limit) + "|" + strings.Join(tokens, " ")
}

// Highlight splits text into plain and highlighted spans for the given
// match terms.
func (l *Library) Highlight(text string, matches []string) []highlight.Span {
	return l.index.Highlight(text, matches)
}

// Delete removes a document by ID and reports whether it was indexed.
func (l *Library) Delete(ctx context.Context, id string) (bool, error) {
	if err := l.checkOpen(ctx); err != nil {
		return false, err
	}

	found := l.index.Delete(id)
	if found {
		l.invalidate()
	}

	l.metrics.RecordDelete(found)
	l.logger.LogDelete(ctx, id, found)

	return found, nil
}

// Clear removes every document and cached result.
func (l *Library) Clear(ctx context.Context) error {
	if err := l.checkOpen(ctx); err != nil {
		return err
	}

	l.index.Clear()
	l.invalidate()

	l.metrics.RecordClear()
	l.logger.LogClear(ctx)

	return nil
}

// Statistics returns index and cache counters.
func (l *Library) Statistics() Statistics {
	s := Statistics{Statistics: l.index.Statistics()}
	if l.results != nil {
		s.Cache = l.results.Stats()
	}
	return s
}

// Snapshot writes every indexed document to w.
func (l *Library) Snapshot(ctx context.Context, w io.Writer, optFns ...snapshot.Option) error {
	if err := l.checkOpen(ctx); err != nil {
		return err
	}

	docs := l.index.Documents()
	err := snapshot.Write(resource.NewRateLimitedWriter(ctx, w, l.ioLimiter), docs, optFns...)
	l.logger.LogSnapshot(ctx, len(docs), err)

	return err
}

// Restore replaces the index contents with the documents of a snapshot.
// On a decode error the index is left untouched.
func (l *Library) Restore(ctx context.Context, r io.Reader) (lexical.IndexReport, error) {
	if err := l.checkOpen(ctx); err != nil {
		return lexical.IndexReport{}, err
	}

	docs, err := snapshot.Read(resource.NewRateLimitedReader(ctx, r, l.ioLimiter))
	if err != nil {
		l.logger.LogRestore(ctx, lexical.IndexReport{}, err)
		return lexical.IndexReport{}, err
	}

	start := time.Now()
	l.index.Clear()
	report := l.index.IndexArticles(docs)
	l.invalidate()

	l.metrics.RecordIndex(report.Indexed, report.Skipped, time.Since(start))
	l.logger.LogRestore(ctx, report, nil)

	return report, nil
}

// Close stops the cache janitor. Subsequent operations return ErrClosed.
// Close is idempotent.
func (l *Library) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	if l.results != nil {
		return l.results.Close()
	}
	return nil
}

func (l *Library) checkOpen(ctx context.Context) error {
	if l.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("lexis: %w", err)
	}
	return nil
}

func (l *Library) invalidate() {
	if l.results != nil {
		l.results.Clear()
	}
}
