package fmtlog

// Core emission path all policies funnel into. calldepth is the number of
// stack frames between log and the user call site. Nothing is rendered when
// the backend has the severity disabled.
func (l *Logger) log(calldepth int, severity Severity, format string, args ...any) (err error) {
	if !l.backend.Enabled(l.name, severity) {
		return
	}

	location := caller(calldepth)

	message, err := l.formatter.Render(format, args...)
	if err != nil {
		return
	}

	l.backend.Emit(location, severity, l.name, message)
	return
}

// Log emits unconditionally at the given severity. calldepth counts extra
// wrapper frames above the immediate caller, so helper functions can report
// their own caller's position (0 for a direct call).
func (l *Logger) Log(calldepth int, severity Severity, format string, args ...any) (err error) {
	err = l.log(calldepth+2, severity, format, args...)
	return
}

// Debug logs a debug message with positional formatting.
func (l *Logger) Debug(format string, args ...any) (err error) {
	err = l.log(2, SeverityDebug, format, args...)
	return
}

// Info logs an informational message with positional formatting.
func (l *Logger) Info(format string, args ...any) (err error) {
	err = l.log(2, SeverityInfo, format, args...)
	return
}

// Warn logs a warning message with positional formatting.
func (l *Logger) Warn(format string, args ...any) (err error) {
	err = l.log(2, SeverityWarn, format, args...)
	return
}

// Error logs an error message with positional formatting.
func (l *Logger) Error(format string, args ...any) (err error) {
	err = l.log(2, SeverityError, format, args...)
	return
}

// Fatal logs a fatal message with positional formatting. It does not
// terminate the process; final disposition belongs to the backend.
func (l *Logger) Fatal(format string, args ...any) (err error) {
	err = l.log(2, SeverityFatal, format, args...)
	return
}
