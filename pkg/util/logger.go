// Package util holds shared infrastructure helpers.
package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig holds the configuration for the structured logger.
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	Output io.Writer
}

// DefaultLoggerConfig returns the standard server logger config.
// Output goes to stderr: the MCP transport owns stdout.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: os.Stderr,
	}
}

// NewLogger creates a structured slog logger from the given configuration.
// Unknown levels fall back to info, unknown formats to JSON.
func NewLogger(config LoggerConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(config.Level),
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
