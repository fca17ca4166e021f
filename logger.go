package hybridize

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/hybridize/indexrange"
)

// Logger wraps slog.Logger with prediction-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithWindow adds the query and target window to the logger.
func (l *Logger) WithWindow(query, target indexrange.Range) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", query.String(), "target", target.String()),
	}
}

// WithK adds the number of retained interactions to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogWindow logs the search of one window pair.
func (l *Logger) LogWindow(ctx context.Context, index int, pair indexrange.Pair, err error) {
	if err != nil {
		l.ErrorContext(ctx, "window search failed",
			"pair", index,
			"query", pair.Query.String(),
			"target", pair.Target.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "window search completed",
			"pair", index,
			"query", pair.Query.String(),
			"target", pair.Target.String(),
		)
	}
}

// LogRun logs a complete prediction run.
func (l *Logger) LogRun(ctx context.Context, pairs int, reported uint64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "prediction failed",
			"pairs", pairs,
			"reported", reported,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "prediction completed",
			"pairs", pairs,
			"reported", reported,
			"duration", duration,
		)
	}
}

// LogSnapshot logs a snapshot publication.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot published",
			"name", name,
		)
	}
}
