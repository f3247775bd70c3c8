package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ftpbot/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger described by cfg. Output always goes
// to stderr; when cfg.File is set it is also appended to a size-rotated file.
// The returned closer flushes and closes the file sink.
func Setup(cfg config.LoggingConfig) (io.Closer, error) {
	var sink io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, err
		}

		rotator := newRotator(cfg)
		sink = io.MultiWriter(os.Stderr, rotator)
		closer = rotator
	}

	slog.SetDefault(slog.New(NewHandler(sink, cfg)))
	return closer, nil
}

// NewHandler builds a text or JSON handler at the configured level.
func NewHandler(w io.Writer, cfg config.LoggingConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	if cfg.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func newRotator(cfg config.LoggingConfig) *lumberjack.Logger {
	compress := true
	if cfg.Compress != nil {
		compress = *cfg.Compress
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   compress,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
