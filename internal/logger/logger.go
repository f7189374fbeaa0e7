// Package logger builds the service's slog logger: text output on stderr,
// optionally teed into a size-rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/youruser/badgeapp/internal/config"
)

// ParseLevel converts a level string to slog.Level. Unrecognized strings
// default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates the logger described by cfg. The returned closer flushes the
// rotated log file, if one is configured.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: 3,
			MaxAge:     28,
		}
		w = io.MultiWriter(os.Stderr, lj)
		closer = lj
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return slog.New(handler), closer
}
