package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns the directory log files are written to
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskr", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.taskr/logs/taskr.log
// Uses text format for human readability. The returned closer releases the file.
func Init(level slog.Level) (io.Closer, error) {
	logDir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "taskr.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	Setup(file, level)
	return file, nil
}

// Setup points the default slog logger and the standard log package at w
func Setup(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}

// Discard silences all logging; used when the log file cannot be opened
func Discard() {
	Setup(io.Discard, slog.LevelError)
}
