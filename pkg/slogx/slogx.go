package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls how the process logger is built.
type Config struct {
	Service string
	Version string
	Env     string // "dev" and "development" enable source locations
	Level   string // debug, info, warn, error
	Format  string // json (default) or text
}

// New builds the process-wide logger, tags every record with the service
// identity, and installs it as the slog default so stray slog calls in
// dependencies end up in the same stream.
func New(cfg Config) *slog.Logger {
	logger := slog.New(cfg.handler()).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)
	return logger
}

func (c Config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     c.level(),
		AddSource: c.Env == "dev" || c.Env == "development",
	}
	if strings.EqualFold(c.Format, "text") {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}

func (c Config) level() slog.Level {
	switch strings.ToLower(c.Level) {
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
