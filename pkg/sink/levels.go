// Shared pieces for the concrete fmtlog backends.
package sink

import (
	"sync"
	"sync/atomic"

	"fmtlog/pkg/fmtlog"
)

// Levels is the per-logger-name enablement table backends answer
// Enabled calls from. A name without an override uses the default
// threshold. Safe for concurrent use.
type Levels struct {
	fallback atomic.Int32
	names    sync.Map // map[string]*atomic.Int32
}

// NewLevels creates a table with the given default minimum severity.
func NewLevels(min fmtlog.Severity) (levels *Levels) {
	levels = &Levels{}
	levels.fallback.Store(int32(min))
	return
}

// SetDefault changes the threshold for names without an override.
func (l *Levels) SetDefault(min fmtlog.Severity) {
	l.fallback.Store(int32(min))
}

// Default returns the fallback threshold.
func (l *Levels) Default() (min fmtlog.Severity) {
	min = fmtlog.Severity(l.fallback.Load())
	return
}

// Set overrides the threshold for one logger name.
func (l *Levels) Set(name string, min fmtlog.Severity) {
	value, _ := l.names.LoadOrStore(name, &atomic.Int32{})
	value.(*atomic.Int32).Store(int32(min))
}

// Clear removes a per-name override.
func (l *Levels) Clear(name string) {
	l.names.Delete(name)
}

// Threshold returns the effective minimum severity for a logger name.
func (l *Levels) Threshold(name string) (min fmtlog.Severity) {
	if value, ok := l.names.Load(name); ok {
		min = fmtlog.Severity(value.(*atomic.Int32).Load())
		return
	}
	min = l.Default()
	return
}

// Enabled reports whether the severity clears the effective threshold.
func (l *Levels) Enabled(name string, severity fmtlog.Severity) (enabled bool) {
	enabled = severity >= l.Threshold(name)
	return
}
