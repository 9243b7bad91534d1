package fmtlog

import "time"

// Throttle policy: emit when at least minInterval has elapsed since the
// last emission at this call site (elapsed exactly equal counts). The slot
// is rebased even when the severity turns out to be disabled, mirroring the
// once policy's slot-consumption rule.
//
// A failing clock must not cost diagnostic content: the clock error is
// reported as an error record from the same call site and the requested
// message is then emitted unconditionally. Throttle accuracy is sacrificed,
// messages are not.
func (l *Logger) logThrottle(calldepth int, severity Severity, minInterval time.Duration, format string, args ...any) (err error) {
	state := l.site(callerPC(calldepth))

	now, err := l.clock.Now()
	if err != nil {
		l.log(calldepth+1, SeverityError, "%v", err)
		err = l.log(calldepth+1, severity, format, args...)
		return
	}

	state.mu.Lock()
	due := now.Sub(state.lastEmit) >= minInterval
	if due {
		state.lastEmit = now
	}
	state.mu.Unlock()

	if !due {
		return
	}
	err = l.log(calldepth+1, severity, format, args...)
	return
}

// DebugThrottle logs a debug message at most once per minInterval at this
// call site.
func (l *Logger) DebugThrottle(minInterval time.Duration, format string, args ...any) (err error) {
	err = l.logThrottle(2, SeverityDebug, minInterval, format, args...)
	return
}

// InfoThrottle logs an informational message at most once per minInterval
// at this call site.
func (l *Logger) InfoThrottle(minInterval time.Duration, format string, args ...any) (err error) {
	err = l.logThrottle(2, SeverityInfo, minInterval, format, args...)
	return
}

// WarnThrottle logs a warning message at most once per minInterval at this
// call site.
func (l *Logger) WarnThrottle(minInterval time.Duration, format string, args ...any) (err error) {
	err = l.logThrottle(2, SeverityWarn, minInterval, format, args...)
	return
}

// ErrorThrottle logs an error message at most once per minInterval at this
// call site.
func (l *Logger) ErrorThrottle(minInterval time.Duration, format string, args ...any) (err error) {
	err = l.logThrottle(2, SeverityError, minInterval, format, args...)
	return
}

// FatalThrottle logs a fatal message at most once per minInterval at this
// call site.
func (l *Logger) FatalThrottle(minInterval time.Duration, format string, args ...any) (err error) {
	err = l.logThrottle(2, SeverityFatal, minInterval, format, args...)
	return
}
