package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger = slog.Default()

// Init points the application logger at the file at path, creating parent
// directories as needed. The terminal belongs to the TUI, so nothing is
// written to stderr once Init succeeds.
func Init(path string) (*slog.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Anything still using the standard log package ends up in the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return Logger, nil
}

// Discard returns a logger that drops every record. Tests and the
// non-interactive commands use it when no log file is wanted.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
