package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"depviz/internal/settings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
}

// New constructs a slog logger writing to stderr using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: level <= slog.LevelDebug,
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = settings.FormatConsole
	}

	var handler slog.Handler
	switch format {
	case settings.FormatJSON:
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	case settings.FormatConsole:
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewFromSettings creates a logger using tool preferences.
func NewFromSettings(s *settings.Settings) (*slog.Logger, error) {
	if s == nil {
		return New(Options{Level: "info", Format: settings.FormatConsole})
	}
	return New(Options{Level: s.Logging.Level, Format: s.Logging.Format})
}

// WithRunID tags the logger with a fresh identifier for this invocation so
// interleaved output from concurrent runs can be told apart.
func WithRunID(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", uuid.NewString()))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
