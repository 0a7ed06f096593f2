package logging

import (
	"log/slog"
	"os"
)

// New creates a structured logger with text output on stderr, keeping
// stdout clean for the command's own tables.
// level: one of "debug", "info", "warn", "error" (default: "info")
func New(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
