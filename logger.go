package invidx

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific helpers so call sites log
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger writing JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithIndexName tags subsequent records with the persisted index name.
func (l *Logger) WithIndexName(name string) *Logger {
	return &Logger{Logger: l.Logger.With("index", name)}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, docs, terms int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"documents", docs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index built",
			"documents", docs,
			"terms", terms,
		)
	}
}

// LogSave logs an index save.
func (l *Logger) LogSave(ctx context.Context, name, codec string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index save failed",
			"name", name,
			"codec", codec,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index saved",
			"name", name,
			"codec", codec,
			"bytes", size,
		)
	}
}

// LogLoad logs an index load.
func (l *Logger) LogLoad(ctx context.Context, name, codec string, terms int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index load failed",
			"name", name,
			"codec", codec,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index loaded",
			"name", name,
			"codec", codec,
			"terms", terms,
		)
	}
}

// LogQuery logs a query evaluation.
func (l *Logger) LogQuery(ctx context.Context, words, topN, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"words", words,
			"top_n", topN,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"words", words,
			"top_n", topN,
			"results", results,
		)
	}
}
