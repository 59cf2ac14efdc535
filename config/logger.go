// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLevel maps "debug", "info", "warn", "error" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level must be 'debug', 'info', 'warn' or 'error', got %q", s)
	}
}

// NewLogger creates a slog.Logger writing to outW. It does not set the
// global logger, so every shell gets an isolated instance. Unknown levels
// fall back to info, unknown formats to text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := ParseLevel(levelStr)
	if err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// Logger builds the logger described by c.Log.
func (c *Config) Logger(outW io.Writer) *slog.Logger {
	return NewLogger(c.Log.Level, c.Log.Format, outW)
}
