package fulltext

import (
	"log/slog"

	"github.com/hupe1980/lexis/lexical/analysis"
)

type options struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

// Option configures an Index.
type Option func(*options)

// WithAnalyzer sets the analyzer used for both documents and queries.
// If nil is passed, analysis.New() is used.
func WithAnalyzer(a *analysis.Analyzer) Option {
	return func(o *options) {
		o.analyzer = a
	}
}

// WithLogger sets the logger used for indexing diagnostics.
// If nil is passed, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
