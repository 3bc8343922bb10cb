// Package logging provides the logging interface and default implementations
// for the aswire codec.
//
// Design: four-level interface (Error, Warn, Info, Debug). Users can wrap
// their own structured loggers (slog, zap) if needed. The codec itself logs
// only diagnostic events (skipped extension markers, lossy conversions) and
// defaults to Discard so hot encode/decode paths stay silent.
//
// Log format: YYYY/MM/DD HH:MM:SS LEVEL [component] message
//
// Example: 2026/08/30 10:12:45 DEBUG [unpacker] skipped ext type 0x05 (3 bytes)
//
// Component namespace prefixes are used for filtering:
//   - [packer]   — operand/value encoding
//   - [unpacker] — operand/value decoding
//   - [ctx]      — context path serialization
//   - [proto]    — message framing and compression
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents the logging level.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs info, warnings, and errors.
	LevelInfo
	// LevelDebug logs everything including debug messages.
	LevelDebug
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface for codec logging.
//
// Concurrency: DefaultLogger and Discard are safe for concurrent use.
// User-provided Logger implementations MUST be safe for concurrent use,
// as a single Config may be shared by encoders on multiple goroutines.
type Logger interface {
	// Errorf logs a formatted error message.
	Errorf(format string, args ...any)

	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)

	// Infof logs a formatted informational message.
	Infof(format string, args ...any)

	// Debugf logs a formatted debug message.
	Debugf(format string, args ...any)
}

// DefaultLogger writes timestamped, level-prefixed lines to an io.Writer.
// It is stateless and safe for concurrent use (log.Logger is thread-safe).
// Level is read-only after construction — create a new logger to change level.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
}

// NewDefaultLogger creates a default logger writing to stderr at the given level.
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewDefaultLoggerWithOutput(level, os.Stderr)
}

// NewDefaultLoggerWithOutput creates a default logger writing to w at the given level.
func NewDefaultLoggerWithOutput(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

// Errorf implements Logger.
func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

// Warnf implements Logger.
func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Infof implements Logger.
func (l *DefaultLogger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Debugf implements Logger.
func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

func (l *DefaultLogger) logf(level Level, format string, args ...any) {
	if level > l.level {
		return
	}
	l.logger.Printf("%s %s", level, fmt.Sprintf(format, args...))
}
