// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jroosing/autodns/internal/config"
)

type Config struct {
	Level            string
	Structured       bool
	StructuredFormat string
	IncludePID       bool
	ExtraFields      map[string]string
	// Output defaults to stderr so that generated zone text on stdout stays clean.
	Output io.Writer
}

// FromConfig maps the logging section of the application config.
func FromConfig(cfg config.LoggingConfig) Config {
	return Config{
		Level:            cfg.Level,
		Structured:       cfg.Structured,
		StructuredFormat: cfg.StructuredFormat,
		IncludePID:       cfg.IncludePID,
		ExtraFields:      cfg.ExtraFields,
	}
}

func Configure(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	attrs := make([]slog.Attr, 0, len(cfg.ExtraFields)+1)
	for k, v := range cfg.ExtraFields {
		attrs = append(attrs, slog.String(k, v))
	}
	if cfg.IncludePID {
		attrs = append(attrs, slog.Int("pid", os.Getpid()))
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Structured && strings.ToLower(cfg.StructuredFormat) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
