package dynarray

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynarray-specific fields.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName tags every record with a container name, useful when several
// containers share one handler.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// LogReallocate logs a buffer reallocation. from and to are capacities in
// slots, bytes is the size of the new buffer.
func (l *Logger) LogReallocate(from, to, bytes int, err error) {
	if err != nil {
		l.Error("reallocation failed",
			"from", from,
			"to", to,
			"error", err,
		)
		return
	}

	direction := "grow"
	if to < from {
		direction = "shrink"
	}
	l.Debug("buffer reallocated",
		"direction", direction,
		"from", from,
		"to", to,
		"bytes", bytes,
	)
}
