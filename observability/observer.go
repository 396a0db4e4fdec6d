// Package observability provides event-based observability for automaton
// runs. Level values align with OpenTelemetry SeverityNumbers so events can be
// forwarded to OTel collectors, slog handlers or zap cores without translation
// tables at each call site.
package observability

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/zap/zapcore"
)

// Level represents event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8), maps to slog.LevelDebug
	LevelInfo    Level = 9  // OTel INFO (9-12), maps to slog.LevelInfo
	LevelWarning Level = 13 // OTel WARN (13-16), maps to slog.LevelWarn
	LevelError   Level = 17 // OTel ERROR (17-20), maps to slog.LevelError
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps this level to the corresponding slog.Level for log emission.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// ZapLevel maps this level to the corresponding zapcore.Level. Levels above
// the ERROR range stay at ErrorLevel so an observer never panics or exits.
func (l Level) ZapLevel() zapcore.Level {
	switch {
	case l <= 8:
		return zapcore.DebugLevel
	case l <= 12:
		return zapcore.InfoLevel
	case l <= 16:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// EventType identifies the kind of event. Each package defines its own
// constants using this type (e.g., "automaton.run.start").
type EventType string

// Event is an observability event emitted during a run. Fields map to
// OTel LogRecord fields: Type→EventName, Level→SeverityNumber,
// Timestamp→Timestamp, Source→InstrumentationScope, Data→Attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events for logging, tracing, or metrics.
//
// Implementations must not affect execution flow: OnEvent has no error
// return and a slow observer only slows the run down.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
