package logging

import (
	"log/slog"
	"os"
)

// Setup builds the process logger and installs it as the slog default.
// Verbosity counts -v flags: 0 shows warnings and errors, 1 adds info,
// anything more adds debug.
func Setup(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
