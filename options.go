package lexis

import (
	"github.com/hupe1980/lexis/cache"
	"github.com/hupe1980/lexis/lexical/analysis"
	"github.com/hupe1980/lexis/lexical/fulltext"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	analyzerOptions  []analysis.Option
	cacheOptions     []cache.Option
	cacheDisabled    bool
	defaultLimit     int
	ioLimit          int64
	err              error
}

// Option configures the Library constructor.
type Option func(*options)

// WithLogger sets the structured logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithAnalyzerOptions appends options for the analyzer shared by
// indexing and querying.
func WithAnalyzerOptions(opts ...analysis.Option) Option {
	return func(o *options) {
		o.analyzerOptions = append(o.analyzerOptions, opts...)
	}
}

// WithCacheOptions appends options for the search result cache.
func WithCacheOptions(opts ...cache.Option) Option {
	return func(o *options) {
		o.cacheOptions = append(o.cacheOptions, opts...)
	}
}

// WithoutCache disables search result memoization.
func WithoutCache() Option {
	return func(o *options) {
		o.cacheDisabled = true
	}
}

// WithDefaultLimit sets the limit used when Search is called with a
// non-positive limit. Values <= 0 keep fulltext.DefaultLimit.
func WithDefaultLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.defaultLimit = n
		}
	}
}

// WithIOLimit caps Snapshot and Restore throughput at bytesPerSec.
// Values <= 0 disable throttling.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithConfig applies a Config. Zero-valued fields keep the defaults.
// An invalid Config makes New fail with ErrInvalidConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if err := cfg.Validate(); err != nil {
			o.err = err
			return
		}

		logger, err := cfg.Log.Logger()
		if err != nil {
			o.err = err
			return
		}
		o.logger = logger

		o.cacheDisabled = cfg.Cache.Disabled
		o.cacheOptions = append(o.cacheOptions,
			cache.WithMaxSize(cfg.Cache.MaxSize),
			cache.WithCleanupInterval(cfg.Cache.CleanupInterval),
		)
		if cfg.Cache.TTL > 0 {
			o.cacheOptions = append(o.cacheOptions, cache.WithDefaultTTL(cfg.Cache.TTL))
		}

		if len(cfg.Search.StopWords) > 0 {
			o.analyzerOptions = append(o.analyzerOptions, analysis.WithStopWords(cfg.Search.StopWords...))
		}
		if len(cfg.Search.ExtraStopWords) > 0 {
			o.analyzerOptions = append(o.analyzerOptions, analysis.WithExtraStopWords(cfg.Search.ExtraStopWords...))
		}
		if cfg.Search.MinTokenLength > 0 {
			o.analyzerOptions = append(o.analyzerOptions, analysis.WithMinTokenLength(cfg.Search.MinTokenLength))
		}
		if cfg.Search.DefaultLimit > 0 {
			o.defaultLimit = cfg.Search.DefaultLimit
		}
		if cfg.Snapshot.IOLimit > 0 {
			o.ioLimit = cfg.Snapshot.IOLimit
		}
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		defaultLimit:     fulltext.DefaultLimit,
	}
}
