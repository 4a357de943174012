// File: logger.go
// Title: Core Logger Implementation
// Description: Immutable structured logger. Derived loggers share their
//              parent's output and add fields, a name or a correlation ID.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-02-11 v0.2.0: Synchronous writer only, Discard logger, error fields
// - 2025-02-13 v0.3.0: Immutable loggers over a shared sink, no caller lookup

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

// errorKey is the field name that Err uses; an error value under it becomes
// the entry's Error
const errorKey = "error"

// sink serializes writes of one logger family
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(p)
}

// Logger writes structured entries. The With methods return derived loggers
// and never change the receiver, so a Logger is safe for concurrent use.
type Logger struct {
	level         Level
	formatter     Formatter
	out           *sink
	name          string
	correlationID string
	fields        Fields
}

// Config holds the settings for NewWithConfig. A nil Output means stderr.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a JSON logger on stderr at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		out:       &sink{w: output},
		name:      config.Name,
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

func (l *Logger) derive(change func(*Logger)) *Logger {
	clone := *l
	clone.fields = l.fields.Merge(nil)
	change(&clone)
	return &clone
}

func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithOutput returns a logger writing to output; it no longer shares the
// parent's sink
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.out = &sink{w: output} })
}

func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = c.fields.Merge(fields) })
}

func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = correlationID })
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

var severityLevels = map[mdwerror.Severity]Level{
	mdwerror.SeverityLow:      LevelInfo,
	mdwerror.SeverityMedium:   LevelWarn,
	mdwerror.SeverityHigh:     LevelError,
	mdwerror.SeverityCritical: LevelError,
}

// LogError logs err with its code and severity. Low severity errors are
// logged at info, medium at warn and the rest, plus errors without a code,
// at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	code := mdwerror.GetCode(err)
	severity := mdwerror.GetSeverity(err)
	level, ok := severityLevels[severity]
	if !ok || code == mdwerror.CodeUnknown {
		level = LevelError
	}

	l.log(level, err.Error(), err, []Fields{{
		"error_code":     code,
		"error_severity": severity.String(),
	}})
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Fields = l.fields.Merge(nil)

	for _, set := range fields {
		for k, v := range set {
			if e, isErr := v.(error); isErr && k == errorKey && entry.Error == nil {
				entry.Error = e
				continue
			}
			entry.Fields[k] = v
		}
	}

	data, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.out.write(data)
}
