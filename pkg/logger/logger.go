package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Interface defines logging methods used by the analyzer
type Interface interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Logger implements the logging interface
type Logger struct {
	logger *slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a new logger writing to stderr with the specified level
func NewWithLevel(level slog.Level) *Logger {
	return NewWithWriter(os.Stderr, level, false)
}

// NewWithWriter creates a logger on w. Colors are disabled when noColor is set.
func NewWithWriter(w io.Writer, level slog.Level, noColor bool) *Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// GetSlogLogger returns the underlying slog logger
func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// SetDefault installs the logger as the process-wide slog default
func (l *Logger) SetDefault() {
	slog.SetDefault(l.logger)
}

// Error creates a structured error field
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
