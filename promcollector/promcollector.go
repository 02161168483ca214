// Package promcollector exports lexis operation metrics to Prometheus.
package promcollector

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/hupe1980/lexis"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lexis"

var _ lexis.MetricsCollector = (*Collector)(nil)

// Collector implements lexis.MetricsCollector with Prometheus metrics.
type Collector struct {
	indexBatches  prometheus.Counter
	documents     *prometheus.CounterVec
	indexLatency  prometheus.Histogram
	searchLatency *prometheus.HistogramVec
	searchResults prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
	deletes       *prometheus.CounterVec
	clears        prometheus.Counter
}

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric name prefix. Default is DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithLatencyBuckets sets the histogram buckets, in seconds, for index and
// search latency. Default is prometheus.DefBuckets.
func WithLatencyBuckets(buckets []float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// New creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{
		namespace: DefaultNamespace,
		buckets:   prometheus.DefBuckets,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		indexBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "index_batches_total",
			Help:      "Total IndexArticles and Restore calls",
		}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "documents_total",
			Help:      "Documents processed by indexing, by outcome",
		}, []string{"outcome"}),
		indexLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "index_duration_seconds",
			Help:      "Latency of indexing batches",
			Buckets:   o.buckets,
		}),
		searchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "search_duration_seconds",
			Help:      "Latency of searches including the cache lookup",
			Buckets:   o.buckets,
		}, []string{"status"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "cache_lookups_total",
			Help:      "Search result cache lookups, by result",
		}, []string{"result"}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "deletes_total",
			Help:      "Delete calls, by whether the document was indexed",
		}, []string{"found"}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "clears_total",
			Help:      "Total Clear calls",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.indexBatches, c.documents, c.indexLatency, c.searchLatency,
		c.searchResults, c.cacheLookups, c.deletes, c.clears,
	} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("promcollector: register: %w", err)
		}
	}

	return c, nil
}

// RecordIndex implements lexis.MetricsCollector.
func (c *Collector) RecordIndex(indexed, skipped int, duration time.Duration) {
	c.indexBatches.Inc()
	c.documents.WithLabelValues("indexed").Add(float64(indexed))
	c.documents.WithLabelValues("skipped").Add(float64(skipped))
	c.indexLatency.Observe(duration.Seconds())
}

// RecordSearch implements lexis.MetricsCollector.
func (c *Collector) RecordSearch(results int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.searchLatency.WithLabelValues(status).Observe(duration.Seconds())
	if err == nil {
		c.searchResults.Observe(float64(results))
	}
}

// RecordCacheLookup implements lexis.MetricsCollector.
func (c *Collector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

// RecordDelete implements lexis.MetricsCollector.
func (c *Collector) RecordDelete(found bool) {
	c.deletes.WithLabelValues(strconv.FormatBool(found)).Inc()
}

// RecordClear implements lexis.MetricsCollector.
func (c *Collector) RecordClear() {
	c.clears.Inc()
}

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("promcollector: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("promcollector: write: %w", err)
		}
	}
	return nil
}
