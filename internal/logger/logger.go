// Package logger provides a simple wrapper around slog for structured logging.
package logger

import (
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

// Logger is the global logger instance. Diagnostics go to stderr so that
// report JSON on stdout stays machine-readable.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

// SetQuiet raises the log level so only errors are emitted.
func SetQuiet(quiet bool) {
	if quiet {
		level.Set(slog.LevelError)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
