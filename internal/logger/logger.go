// Package logger builds the structured logger used by the CLI.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// New constructs a text logger writing to w. The level comes from raw
// ("debug", "warn", "error", anything else is info); debug forces Debug.
// Every record carries a run attribute that is unique per invocation.
func New(w io.Writer, raw string, debug bool) *slog.Logger {
	level := ParseLevel(raw)
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
