package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nathoo/adventure/internal/config"
)

// New builds a logger writing to w in the configured format and level.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level(),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup configures the global slog logger. Output goes to cfg.LogFile when
// set, stderr otherwise. The returned func closes the log file.
func Setup(cfg *config.Config) (*slog.Logger, func(), error) {
	out := io.Writer(os.Stderr)
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := New(cfg, out)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// ForAltScreen returns the logger to use while a full-screen UI owns the
// terminal. Without a log file, records are dropped instead of being drawn
// over the UI; the dropping logger also becomes the default.
func ForAltScreen(cfg *config.Config, log *slog.Logger) *slog.Logger {
	if cfg.LogFile != "" {
		return log
	}
	quiet := slog.New(slog.DiscardHandler)
	slog.SetDefault(quiet)
	return quiet
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
