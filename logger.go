package hyperlsh

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hyperlsh-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithPlanes adds a plane count field to the logger.
func (l *Logger) WithPlanes(planes int) *Logger {
	return &Logger{
		Logger: l.Logger.With("planes", planes),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(dimension int, err error) {
	if err != nil {
		l.Error("add failed",
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"dimension", dimension,
		)
	}
}

// LogGroup logs a group lookup.
func (l *Logger) LogGroup(found bool, size int, err error) {
	if err != nil {
		l.Error("group lookup failed",
			"error", err,
		)
	} else {
		l.Debug("group lookup completed",
			"found", found,
			"size", size,
		)
	}
}

// LogNearest logs a nearest-k query.
func (l *Logger) LogNearest(k, candidates, results int, err error) {
	if err != nil {
		l.Error("nearest query failed",
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("nearest query completed",
			"k", k,
			"candidates", candidates,
			"results", results,
		)
	}
}
