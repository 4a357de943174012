// File: format.go
// Title: Log Output Formatters
// Description: JSON, text and console formatters for log entries. Fields are
//              written in sorted order so output is stable across runs.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple formats
// - 2025-02-11 v0.2.0: Stable field ordering, dropped logfmt
// - 2025-02-13 v0.3.0: Builder based text output, console embeds text

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses json, text or console
func ParseFormat(format string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if name == key {
			return Format(f), nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter renders one entry as a complete output line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for format, JSON for unknown values
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	doc := entry.Fields.Merge(Fields{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	})
	if entry.Logger != "" {
		doc["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		doc["correlation_id"] = entry.CorrelationID
	}
	if entry.Error != nil {
		doc["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				doc["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter writes "15:04:05 [INF] {name} (cid=...) message [k=v ...]"
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	f.writeLine(&b, entry)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func (f *TextFormatter) writeLine(b *strings.Builder, entry *Entry) {
	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString("[" + entry.Level.ShortString() + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.CorrelationID != "" {
		b.WriteString(" (cid=" + entry.CorrelationID + ")")
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if keys := entry.Fields.Keys(); len(keys) > 0 {
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Error != nil {
		fmt.Fprintf(b, " error=%q", entry.Error.Error())
	}
}

// ConsoleFormatter is the text format wrapped in the level color
type ConsoleFormatter struct {
	TextFormatter
	DisableColors bool
}

func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: *NewTextFormatter()}
}

func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableColors {
		b.WriteString(entry.Level.Color())
	}
	f.writeLine(&b, entry)
	if !f.DisableColors {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}
