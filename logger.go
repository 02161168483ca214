package lexis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/lexis/lexical"
)

// Logger is the structured logger a Library reports through. Every
// operation logs with the same field names, so output from different
// libraries can be filtered uniformly.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewStreamLogger logs to w in format "text" (or empty) or "json".
func NewStreamLogger(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, format)
	}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// ParseLevel accepts debug, info, warn and error in any case. The empty
// string means info.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

// WithQuery tags every record with the raw query string.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{Logger: l.With("query", query)}
}

// outcome logs "<op> failed" at error level when err is set and
// "<op> completed" at level otherwise.
func (l *Logger) outcome(ctx context.Context, level slog.Level, op string, err error, attrs ...any) {
	if err != nil {
		l.Log(ctx, slog.LevelError, op+" failed", append(attrs, "error", err)...)
		return
	}
	l.Log(ctx, level, op+" completed", attrs...)
}

// LogIndex reports a batch. Skipped documents raise it to warn.
func (l *Logger) LogIndex(ctx context.Context, report lexical.IndexReport) {
	level := slog.LevelInfo
	if report.Skipped > 0 {
		level = slog.LevelWarn
	}
	l.outcome(ctx, level, "indexing", nil,
		"indexed", report.Indexed,
		"replaced", report.Replaced,
		"skipped", report.Skipped,
	)
}

func (l *Logger) LogSearch(ctx context.Context, query string, limit, results int, err error) {
	l.outcome(ctx, slog.LevelDebug, "search", err, "query", query, "limit", limit, "results", results)
}

func (l *Logger) LogDelete(ctx context.Context, id string, found bool) {
	l.outcome(ctx, slog.LevelDebug, "delete", nil, "id", id, "found", found)
}

func (l *Logger) LogClear(ctx context.Context) {
	l.outcome(ctx, slog.LevelInfo, "clear", nil)
}

func (l *Logger) LogSnapshot(ctx context.Context, documents int, err error) {
	l.outcome(ctx, slog.LevelInfo, "snapshot", err, "documents", documents)
}

// LogRestore reports a restore; report is ignored when err is set.
func (l *Logger) LogRestore(ctx context.Context, report lexical.IndexReport, err error) {
	if err != nil {
		l.outcome(ctx, slog.LevelInfo, "restore", err)
		return
	}
	l.outcome(ctx, slog.LevelInfo, "restore", nil, "indexed", report.Indexed, "skipped", report.Skipped)
}
