package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	envcfg "randomyt/pkg/config"
)

// Output formats accepted by LOG_FORMAT.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// Anything else yields info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w. format is FormatJSON or FormatText;
// unknown formats fall back to JSON. Source locations are attached when
// the level is debug.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// NewLogger creates the stdout logger configured by LOG_LEVEL (default info)
// and LOG_FORMAT (default json).
func NewLogger() *slog.Logger {
	return New(
		os.Stdout,
		ParseLevel(envcfg.GetEnvString("LOG_LEVEL", "info")),
		envcfg.GetEnvString("LOG_FORMAT", FormatJSON),
	)
}
