// Package logging provides structured logging for the file manager core.
//
// Logger wraps log/slog with a fixed set of levels, a nop implementation for
// library defaults and tests, and helpers that attach the fields the trash
// manager reports on (operation, path, count).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents different logging levels.
type Level int

// Logging levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a string log level into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// Format selects the slog handler.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a handler format name.
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format: %s", format)
	}
}

// Config holds configuration for the logger.
type Config struct {
	// Level sets the minimum log level.
	Level Level
	// Format selects text or JSON output.
	Format Format
	// Output receives log records. Defaults to os.Stderr.
	Output io.Writer
	// EnableCallerInfo includes file and line number in logs.
	EnableCallerInfo bool
}

// DefaultConfig returns a default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// Logger provides structured logging.
type Logger struct {
	logger *slog.Logger
}

// New creates a new structured logger with the given configuration.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     config.Level.slog(),
		AddSource: config.EnableCallerInfo,
	}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// Debug logs debug-level messages.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.logger.Debug(msg, args...)
	}
}

// Info logs info-level messages.
func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.logger.Info(msg, args...)
	}
}

// Warn logs warning-level messages.
func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.logger.Warn(msg, args...)
	}
}

// Error logs error-level messages.
func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.logger.Error(msg, args...)
	}
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithOperation returns a logger with operation context.
func (l *Logger) WithOperation(op Operation) *Logger {
	return l.With("operation", string(op))
}

// WithPath returns a logger with path context.
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// WithCount returns a logger with an item count.
func (l *Logger) WithCount(n int) *Logger {
	return l.With("count", n)
}

// WithError returns a logger with error context.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.With("error", err.Error())
}

// Operation names the core operation a log record belongs to.
type Operation string

// Operation constants.
const (
	OpTrash   Operation = "trash"
	OpUntrash Operation = "untrash"
	OpRemove  Operation = "remove"
	OpClear   Operation = "clear"
	OpList    Operation = "list"
	OpSort    Operation = "sort"
	OpScan    Operation = "scan"
)

// LogBatch logs the outcome counts of a batch operation.
func LogBatch(logger *Logger, op Operation, succeeded, failed, remaining int) {
	if logger == nil {
		return
	}

	fields := []any{
		"operation", string(op),
		"succeeded", succeeded,
		"failed", failed,
		"remaining", remaining,
	}
	if failed > 0 {
		logger.Warn("batch completed with failures", fields...)
	} else {
		logger.Info("batch completed", fields...)
	}
}
