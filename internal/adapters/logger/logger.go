// Package logger implements ports.Logger on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/hdrgen/internal/core/ports"
)

// Logger implements ports.Logger.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a logger writing pretty lines to stderr.
func New() ports.Logger {
	l := &Logger{}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput replaces the destination. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its causes and their metadata. A nil error is ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	msg := formatErrorEntries(collectErrorEntries(err))

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(msg)
}
