package fmtlog

// Once policy: the first call at a call site transitions its slot to
// emitted and logs; every later call at that site is a no-op. The slot is
// consumed regardless of whether the severity was enabled at the time, so
// "once" means at most once ever, not once-while-visible.
func (l *Logger) logOnce(calldepth int, severity Severity, format string, args ...any) (err error) {
	state := l.site(callerPC(calldepth))

	state.mu.Lock()
	done := state.emitted
	state.emitted = true
	state.mu.Unlock()

	if done {
		return
	}
	err = l.log(calldepth+1, severity, format, args...)
	return
}

// DebugOnce logs a debug message only on the first call at this call site.
func (l *Logger) DebugOnce(format string, args ...any) (err error) {
	err = l.logOnce(2, SeverityDebug, format, args...)
	return
}

// InfoOnce logs an informational message only on the first call at this
// call site.
func (l *Logger) InfoOnce(format string, args ...any) (err error) {
	err = l.logOnce(2, SeverityInfo, format, args...)
	return
}

// WarnOnce logs a warning message only on the first call at this call site.
func (l *Logger) WarnOnce(format string, args ...any) (err error) {
	err = l.logOnce(2, SeverityWarn, format, args...)
	return
}

// ErrorOnce logs an error message only on the first call at this call site.
func (l *Logger) ErrorOnce(format string, args ...any) (err error) {
	err = l.logOnce(2, SeverityError, format, args...)
	return
}

// FatalOnce logs a fatal message only on the first call at this call site.
func (l *Logger) FatalOnce(format string, args ...any) (err error) {
	err = l.logOnce(2, SeverityFatal, format, args...)
	return
}
