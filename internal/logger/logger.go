// Package logger is the zerolog-backed log used by the page and the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog. A nil *Logger is valid and drops every entry.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing JSON lines, or console lines when
// HumanReadable is set. Output defaults to stderr.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// OpenFile appends JSON lines to path. The page owns the terminal while it
// runs, so this is the only place its logs can go. An empty path discards.
func OpenFile(path, level string) (*Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return Nop(), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := New(Options{Level: level, Writer: file})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, file, nil
}

// WithFields returns a child logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// Debug logs a formatted debug entry.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(zerolog.DebugLevel, nil, format, args)
}

// Info logs a formatted informational entry.
func (l *Logger) Info(format string, args ...any) {
	l.emit(zerolog.InfoLevel, nil, format, args)
}

// Warn logs a formatted warning.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(zerolog.WarnLevel, nil, format, args)
}

// Error logs err under the "error" field with a formatted message.
func (l *Logger) Error(err error, format string, args ...any) {
	l.emit(zerolog.ErrorLevel, err, format, args)
}

func (l *Logger) emit(level zerolog.Level, err error, format string, args []any) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	if len(args) == 0 {
		event.Msg(format)
		return
	}
	event.Msgf(format, args...)
}
