package fmtlog

import (
	"sync"
	"time"
)

// Severity is one of the five ordered log levels. The numeric values match
// the rcutils levels so records translate one-to-one into ROS tooling.
type Severity uint8

const (
	SeverityDebug Severity = 10
	SeverityInfo  Severity = 20
	SeverityWarn  Severity = 30
	SeverityError Severity = 40
	SeverityFatal Severity = 50
)

// Location identifies the source position a record was emitted from.
type Location struct {
	File     string
	Line     int
	Function string // innermost unqualified function or method name
}

// Backend is the external sink a Logger hands finished records to. It owns
// enablement state and final message disposition; the Logger never second
// guesses it.
type Backend interface {
	// Enabled reports whether records at the given severity should be
	// rendered and emitted for the named logger.
	Enabled(name string, severity Severity) bool

	// Emit receives one fully rendered record. The record is transient;
	// implementations must copy anything they retain.
	Emit(location Location, severity Severity, name string, message string)
}

// Formatter renders a positional format template against its arguments.
// A malformed template or an argument mismatch is a hard error, never a
// degraded message.
type Formatter interface {
	Render(format string, args ...any) (string, error)
}

// Clock supplies the current time for throttling. Now is fallible so that
// simulated or externally driven time sources can report unavailability.
type Clock interface {
	Now() (time.Time, error)
}

// Logger is a thin positional-formatting layer over a Backend, adding the
// once, throttle and on-change suppression policies. Construct with New or
// NewWithClock; the zero value is not usable.
type Logger struct {
	name      string
	backend   Backend
	formatter Formatter
	clock     Clock

	// sites maps call-site program counters to suppression state. Shared
	// across Child loggers so a call site keeps one state slot for the
	// whole logger lineage, alive until process exit.
	sites *sync.Map
}
