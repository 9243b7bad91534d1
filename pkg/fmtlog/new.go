// Positional-formatting logging layer with call-site suppression policies.
// All sinks, level filtering and output handling are delegated to a Backend.
package fmtlog

import "sync"

// Logger Constructor. The backend owns enablement and output; the logger
// only renders and dispatches. Throttling uses the monotonic system clock.
func New(backend Backend, name string) (logger *Logger) {
	logger = &Logger{
		name:      name,
		backend:   backend,
		formatter: SprintfFormatter{},
		clock:     SystemClock{},
		sites:     &sync.Map{},
	}
	return
}

// Logger Constructor with a specific clock for the throttle policies.
func NewWithClock(backend Backend, name string, clock Clock) (logger *Logger) {
	logger = New(backend, name)
	logger.clock = clock
	return
}

// Child returns a logger named "<parent>.<suffix>" sharing the parent's
// backend, formatter, clock and suppression state.
func (l *Logger) Child(suffix string) (child *Logger) {
	child = &Logger{
		name:      l.name + "." + suffix,
		backend:   l.backend,
		formatter: l.formatter,
		clock:     l.clock,
		sites:     l.sites,
	}
	return
}

// Name returns the logger identity handed to the backend with every record.
func (l *Logger) Name() (name string) {
	name = l.name
	return
}

// SetFormatter replaces the template renderer. Not safe to call
// concurrently with emission.
func (l *Logger) SetFormatter(formatter Formatter) {
	l.formatter = formatter
}
