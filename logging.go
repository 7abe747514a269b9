package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogger opens the log file and wires a tint handler to it. The TUI owns
// stdout, so logs never go there; if the file cannot be opened the logger is
// a no-op.
func setupLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(tint.NewHandler(io.Discard, nil)), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(tint.NewHandler(io.Discard, nil)), func() {}
	}
	logger := slog.New(tint.NewHandler(file, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}))
	return logger, func() { file.Close() }
}
