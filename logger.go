package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWidth adds the block width field to the logger.
func (l *Logger) WithWidth(width uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// LogGrow logs a reallocation of a vector's backing blocks.
func (l *Logger) LogGrow(bitLen uint64, oldCap, newCap int) {
	l.Debug("backing storage grown",
		"bits", bitLen,
		"old_blocks", oldCap,
		"new_blocks", newCap,
	)
}

// LogAlign logs padding added to reach a block boundary.
func (l *Logger) LogAlign(bitLen uint64, padded uint) {
	if padded == 0 {
		return
	}
	l.Debug("padded to block boundary",
		"bits", bitLen,
		"padding", padded,
	)
}
