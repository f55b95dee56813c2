// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering output. The CLI maps its -v count
//              and the log.level config key onto these.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-02-11 v0.2.0: Verbosity mapping, structured parse errors

package log

import (
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every pipeline step with its input and output
	LevelTrace Level = iota
	// LevelDebug logs step timings and configuration decisions
	LevelDebug
	// LevelInfo is the default
	LevelInfo
	// LevelWarn flags suspicious input that was still processed
	LevelWarn
	// LevelError reports failed conversions
	LevelError
	// LevelOff silences the logger
	LevelOff
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// Color returns the ANSI color code for console output
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}

// ShouldLog returns true if this level passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l < LevelOff && l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "off", "none", "quiet":
		return LevelOff, nil
	default:
		return LevelInfo, mdwerror.New("unknown log level").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("log.ParseLevel").
			WithInput(level)
	}
}

// LevelFromVerbosity maps a repeated -v flag count onto a level:
// 0 is warn, 1 info, 2 debug, 3 and more trace.
func LevelFromVerbosity(count int) Level {
	switch {
	case count <= 0:
		return LevelWarn
	case count == 1:
		return LevelInfo
	case count == 2:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
