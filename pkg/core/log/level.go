// File: level.go
// Title: Log Levels
// Description: Log levels with their names, short tags and console colors.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-02-11 v0.2.0: Added LevelOff for silent library loggers
// - 2025-02-13 v0.3.0: Table driven names, dropped fatal

package log

import "strings"

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is used for per-operation detail such as buffer growth
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables all output
	LevelOff
)

const colorReset = "\033[0m"

var levels = [...]struct {
	name  string
	short string
	color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelOff:   {"off", "OFF", colorReset},
}

var levelAliases = map[string]Level{
	"trc":     LevelTrace,
	"dbg":     LevelDebug,
	"inf":     LevelInfo,
	"wrn":     LevelWarn,
	"warning": LevelWarn,
	"err":     LevelError,
	"none":    LevelOff,
	"silent":  LevelOff,
}

func (l Level) known() bool {
	return l >= LevelTrace && l <= LevelOff
}

// String returns the lowercase level name
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levels[l].name
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levels[l].short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if !l.known() {
		return colorReset
	}
	return levels[l].color
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l < LevelOff && l >= minLevel
}

// ParseLevel parses a level name or alias, case-insensitively
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if info.name == key {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}
