package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the application logger.
type Options struct {
	Level string // debug, info, warn or error
	File  string // Optional rotating log file, in addition to stdout
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
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

// New creates a JSON slog.Logger writing to stdout and, when a file is configured, to a
// rotating log file. The returned closer releases the file and is never nil.
func New(opts Options) (*slog.Logger, io.Closer) {
	return newLogger(os.Stdout, opts)
}

func newLogger(stdout io.Writer, opts Options) (*slog.Logger, io.Closer) {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	if opts.File == "" {
		return slog.New(slog.NewJSONHandler(stdout, handlerOpts)), nopCloser{}
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		// Fall back to stdout only
		l := slog.New(slog.NewJSONHandler(stdout, handlerOpts))
		l.Warn("Failed to create log directory, logging to stdout only", slog.String("error", err.Error()))
		return l, nopCloser{}
	}

	fileLogger := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // Megabytes
		MaxBackups: 3,
		MaxAge:     28, // Days
		Compress:   true,
	}
	writer := io.MultiWriter(stdout, fileLogger)
	return slog.New(slog.NewJSONHandler(writer, handlerOpts)), fileLogger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
