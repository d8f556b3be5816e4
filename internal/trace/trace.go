// Package trace provides opt-in evaluation tracing for vellum.
//
// Tracing is off by default and never required for correctness; it
// exists so a REPL session or a script run can be diagnosed after the
// fact. Events are line-delimited JSON written to stderr or, when a
// file is requested, through a rotating lumberjack logger.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event describes a single evaluation step.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Word      string    `json:"word,omitempty"`
	Value     string    `json:"value,omitempty"`
	Depth     int       `json:"depth"`
	Error     string    `json:"error,omitempty"`
}

// Session manages trace event collection and output.
type Session struct {
	mu      sync.Mutex
	enabled atomic.Bool
	sink    io.Writer
	logger  *lumberjack.Logger
}

// Global is the active trace session. Nil until Init is called.
var Global *Session

// Init creates the global trace session. traceFile == "" sends events
// to stderr; otherwise a rotating log file is used (5 backups, 50MB
// each, compressed).
func Init(traceFile string) {
	var sink io.Writer = os.Stderr
	var logger *lumberjack.Logger
	if traceFile != "" {
		logger = &lumberjack.Logger{
			Filename:   traceFile,
			MaxSize:    50,
			MaxBackups: 5,
			Compress:   true,
		}
		sink = logger
	}
	Global = &Session{sink: sink, logger: logger}
}

// Enable turns tracing on.
func (s *Session) Enable() { s.enabled.Store(true) }

// Disable turns tracing off.
func (s *Session) Disable() { s.enabled.Store(false) }

// IsEnabled reports whether tracing is currently active.
func (s *Session) IsEnabled() bool { return s != nil && s.enabled.Load() }

// Emit writes an event if tracing is enabled, stamping it with the
// current time unless the caller already set one.
func (s *Session) Emit(event Event) {
	if !s.IsEnabled() {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	s.mu.Lock()
	fmt.Fprintf(s.sink, "%s\n", data)
	s.mu.Unlock()
}

// Close flushes and closes any open log file.
func (s *Session) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}
