package snapshot

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for snapshot operations. Structured fields keep
// save/load events greppable ("name", "bytes", "codec").
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger from a slog handler. A nil handler gets a text
// handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output. It is the Manager
// default.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
