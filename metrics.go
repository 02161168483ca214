package lexis

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordIndex is called after each IndexArticles or Restore call.
	RecordIndex(indexed, skipped int, duration time.Duration)

	// RecordSearch is called after each search. duration covers the cache
	// lookup and, on a miss, the index search.
	RecordSearch(results int, duration time.Duration, err error)

	// RecordCacheLookup is called once per search. hit is true when the
	// results were served without running the index search.
	RecordCacheLookup(hit bool)

	// RecordDelete is called after each delete.
	RecordDelete(found bool)

	// RecordClear is called after each Clear.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndex(int, int, time.Duration)    {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCacheLookup(bool)                 {}
func (NoopMetricsCollector) RecordDelete(bool)                      {}
func (NoopMetricsCollector) RecordClear()                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexCount       atomic.Int64
	IndexedDocuments atomic.Int64
	SkippedDocuments atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
	DeleteCount      atomic.Int64
	ClearCount       atomic.Int64
}

// RecordIndex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndex(indexed, skipped int, _ time.Duration) {
	b.IndexCount.Add(1)
	b.IndexedDocuments.Add(int64(indexed))
	b.SkippedDocuments.Add(int64(skipped))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordCacheLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheLookup(hit bool) {
	if hit {
		b.CacheHits.Add(1)
	} else {
		b.CacheMisses.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(bool) {
	b.DeleteCount.Add(1)
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IndexCount:       b.IndexCount.Load(),
		IndexedDocuments: b.IndexedDocuments.Load(),
		SkippedDocuments: b.SkippedDocuments.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgNanos:   b.getAvgSearchNanos(),
		CacheHits:        b.CacheHits.Load(),
		CacheMisses:      b.CacheMisses.Load(),
		DeleteCount:      b.DeleteCount.Load(),
		ClearCount:       b.ClearCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IndexCount       int64
	IndexedDocuments int64
	SkippedDocuments int64
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
	CacheHits        int64
	CacheMisses      int64
	DeleteCount      int64
	ClearCount       int64
}
