package vecindex

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecindex-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// WithIndex adds the backend name to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(key any, err error) {
	if err != nil {
		l.Error("insert failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key", key,
		)
	}
}

// LogFind logs a find operation.
func (l *Logger) LogFind(n, resultsFound int, err error) {
	if err != nil {
		l.Error("find failed",
			"n", n,
			"error", err,
		)
	} else {
		l.Debug("find completed",
			"n", n,
			"results", resultsFound,
		)
	}
}

// LogBatchFind logs a batch find operation.
func (l *Logger) LogBatchFind(queries, n int, err error) {
	if err != nil {
		l.Warn("batch find aborted",
			"queries", queries,
			"n", n,
			"error", err,
		)
	} else {
		l.Debug("batch find completed",
			"queries", queries,
			"n", n,
		)
	}
}
