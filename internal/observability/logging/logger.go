// Package logging builds the process-wide slog logger. Every record carries a
// service attribute so the platform's log pipeline can route advisor,
// verification and matching events by origin.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const defaultService = "savelife-ai"

// NewJSONLogger returns a JSON logger on stdout tagged with the service name.
// An empty service falls back to the platform default.
func NewJSONLogger(service, level string) *slog.Logger {
	return newLogger(os.Stdout, service, level)
}

func newLogger(w io.Writer, service, level string) *slog.Logger {
	if service == "" {
		service = defaultService
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("service", service)
}

// parseLevel is forgiving: unknown or empty values mean info so a typo in
// LOG_LEVEL never silences the service.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
