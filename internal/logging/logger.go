// Package logging provides structured logging for the Voxnote CLI.
// It uses Go's standard library slog for structured logging with JSON output
// support. In TUI mode logs go to a state file so the screen stays clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/adrg/xdg"
)

var (
	// defaultLogger is the package-level logger instance.
	defaultLogger *slog.Logger
	loggerMu      sync.RWMutex
)

func init() {
	// Initialize with a default text logger to stderr.
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level // Minimum log level
	JSON      bool       // Use JSON output format
	Output    io.Writer  // Output destination (default: stderr)
	AddSource bool       // Include source file and line number
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		JSON:   false,
		Output: os.Stderr,
	}
}

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
}

// DefaultLogPath returns the diagnostics log path following the XDG spec.
func DefaultLogPath() (string, error) {
	return xdg.StateFile("voxnote/voxnote.log")
}

// InitFile redirects logging to the diagnostics log file and returns a
// closer for it. Used while the TUI owns the terminal.
func InitFile(level slog.Level) (io.Closer, error) {
	path, err := DefaultLogPath()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	Init(Config{Level: level, JSON: true, Output: f})
	return f, nil
}

// Logger returns the current logger instance.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// With returns a logger with additional attributes.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}

// Info logs at INFO level.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs at WARN level.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs at ERROR level.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// Common structured logging fields.
const (
	KeyOperation = "op"
	KeyEntryID   = "entry_id"
	KeyError     = "error"
)
