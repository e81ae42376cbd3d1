package freq

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with consistent field names for annotation and
// sort operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithPolicy adds a policy field to the logger.
func (l *Logger) WithPolicy(p Policy) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", p.Name()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAnnotate logs a completed frequency pass.
func (l *Logger) LogAnnotate(count, workers int, elapsed time.Duration) {
	l.Debug("annotation completed",
		"count", count,
		"workers", workers,
		"elapsed", elapsed,
	)
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(algorithm string, p Policy, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("sort failed",
			"algorithm", algorithm,
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("sort completed",
		"algorithm", algorithm,
		"policy", p.Name(),
		"count", count,
		"elapsed", elapsed,
	)
}

// LogRejected logs input rejected before any work started.
func (l *Logger) LogRejected(count int, err error) {
	l.Warn("input rejected",
		"count", count,
		"error", err,
	)
}
