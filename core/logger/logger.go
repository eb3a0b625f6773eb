package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a text slog.Logger on stderr at info level.
func New(attrs ...slog.Attr) *slog.Logger {
	return NewWithLevel(slog.LevelInfo, attrs...)
}

// NewWithLevel creates a text slog.Logger on stderr at the given level.
func NewWithLevel(level slog.Level, attrs ...slog.Attr) *slog.Logger {
	return newLogger(os.Stderr, level, attrs)
}

// NewDiscard creates a logger that drops everything. Useful as a component
// default where logging is opt-in.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// slog.Level, defaulting to info for unknown names.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level slog.Level, attrs []slog.Attr) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	if len(attrs) == 0 {
		return slog.New(h)
	}
	return slog.New(h.WithAttrs(attrs))
}
