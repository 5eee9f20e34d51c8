package logger

import (
	"log/slog"
	"os"
)

// New returns JSON logger writing to stderr with the given level
// (stdout is reserved for command output).
func New(level string) *slog.Logger {
	lv := slog.LevelInfo
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lv = parsed
		}
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	return slog.New(h)
}
