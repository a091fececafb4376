// Package logger provides logging abstractions for tabload.
// It supports standard library log/slog and allows custom logger implementations.
package logger

import "log/slog"

// Logger is the structured logging interface used by the loader. Warnings
// carry the recoverable conditions (deprecated options, temp-name
// corrections, reserved-word identifiers); fatal conditions are returned as
// errors instead of logged.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs
	Debug(msg string, args ...any)
	// Info logs informational messages with optional key-value pairs
	Info(msg string, args ...any)
	// Warn logs warning messages with optional key-value pairs
	Warn(msg string, args ...any)
}

// Noop is a logger that does nothing. It is the default when no logger is
// configured.
type Noop struct{}

// Debug does nothing.
func (Noop) Debug(_ string, _ ...any) {}

// Info does nothing.
func (Noop) Info(_ string, _ ...any) {}

// Warn does nothing.
func (Noop) Warn(_ string, _ ...any) {}

// Slog wraps a log/slog.Logger to implement the Logger interface.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a logger adapter wrapping an slog.Logger. A nil logger
// wraps slog.Default.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

// Debug logs a debug-level message with structured key-value pairs.
func (s *Slog) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info logs an info-level message with structured key-value pairs.
func (s *Slog) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn logs a warning message with structured key-value pairs.
func (s *Slog) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}
