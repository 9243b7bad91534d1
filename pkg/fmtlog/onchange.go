package fmtlog

// On-change policies compare the monitored value itself, never the rendered
// message. Methods cannot be generic, so the severity entry points are
// package functions taking the Logger first.

// Number covers the value types the thresholded on-change policy can take
// an absolute difference over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Exact variant: emit when the value differs from the last recorded one.
// The first observation at a call site is recorded silently; there is no
// prior value to contrast against.
func logOnChange[T comparable](l *Logger, calldepth int, severity Severity, value T, format string, args ...any) (err error) {
	state := l.site(callerPC(calldepth))

	state.mu.Lock()
	last, seen := state.lastValue.(T)
	seen = seen && state.hasLast
	emit := false
	if !seen || last != value {
		emit = seen
		state.lastValue = value
		state.hasLast = true
	}
	state.mu.Unlock()

	if !emit {
		return
	}
	err = l.log(calldepth+1, severity, format, args...)
	return
}

// Thresholded variant: emit when |value - baseline| >= threshold, where the
// baseline is the last value that was recorded here (the first observation,
// then each value that crossed the threshold). Sub-threshold drift never
// rebases, so it cannot accumulate into an emission.
func logOnChangeBy[T Number](l *Logger, calldepth int, severity Severity, value, threshold T, format string, args ...any) (err error) {
	state := l.site(callerPC(calldepth))

	state.mu.Lock()
	last, seen := state.lastValue.(T)
	seen = seen && state.hasLast
	emit := false
	if !seen || absDiff(value, last) >= threshold {
		emit = seen
		state.lastValue = value
		state.hasLast = true
	}
	state.mu.Unlock()

	if !emit {
		return
	}
	err = l.log(calldepth+1, severity, format, args...)
	return
}

// absDiff avoids unsigned underflow that |a-b| through subtraction would hit.
func absDiff[T Number](a, b T) (diff T) {
	if a > b {
		diff = a - b
		return
	}
	diff = b - a
	return
}

// DebugOnChange logs a debug message when value differs from the last value
// recorded at this call site.
func DebugOnChange[T comparable](l *Logger, value T, format string, args ...any) (err error) {
	err = logOnChange(l, 2, SeverityDebug, value, format, args...)
	return
}

// InfoOnChange logs an informational message when value differs from the
// last value recorded at this call site.
func InfoOnChange[T comparable](l *Logger, value T, format string, args ...any) (err error) {
	err = logOnChange(l, 2, SeverityInfo, value, format, args...)
	return
}

// WarnOnChange logs a warning message when value differs from the last
// value recorded at this call site.
func WarnOnChange[T comparable](l *Logger, value T, format string, args ...any) (err error) {
	err = logOnChange(l, 2, SeverityWarn, value, format, args...)
	return
}

// ErrorOnChange logs an error message when value differs from the last
// value recorded at this call site.
func ErrorOnChange[T comparable](l *Logger, value T, format string, args ...any) (err error) {
	err = logOnChange(l, 2, SeverityError, value, format, args...)
	return
}

// FatalOnChange logs a fatal message when value differs from the last value
// recorded at this call site.
func FatalOnChange[T comparable](l *Logger, value T, format string, args ...any) (err error) {
	err = logOnChange(l, 2, SeverityFatal, value, format, args...)
	return
}

// DebugOnChangeBy logs a debug message when value moved at least threshold
// away from the baseline recorded at this call site.
func DebugOnChangeBy[T Number](l *Logger, value, threshold T, format string, args ...any) (err error) {
	err = logOnChangeBy(l, 2, SeverityDebug, value, threshold, format, args...)
	return
}

// InfoOnChangeBy logs an informational message when value moved at least
// threshold away from the baseline recorded at this call site.
func InfoOnChangeBy[T Number](l *Logger, value, threshold T, format string, args ...any) (err error) {
	err = logOnChangeBy(l, 2, SeverityInfo, value, threshold, format, args...)
	return
}

// WarnOnChangeBy logs a warning message when value moved at least threshold
// away from the baseline recorded at this call site.
func WarnOnChangeBy[T Number](l *Logger, value, threshold T, format string, args ...any) (err error) {
	err = logOnChangeBy(l, 2, SeverityWarn, value, threshold, format, args...)
	return
}

// ErrorOnChangeBy logs an error message when value moved at least threshold
// away from the baseline recorded at this call site.
func ErrorOnChangeBy[T Number](l *Logger, value, threshold T, format string, args ...any) (err error) {
	err = logOnChangeBy(l, 2, SeverityError, value, threshold, format, args...)
	return
}

// FatalOnChangeBy logs a fatal message when value moved at least threshold
// away from the baseline recorded at this call site.
func FatalOnChangeBy[T Number](l *Logger, value, threshold T, format string, args ...any) (err error) {
	err = logOnChangeBy(l, 2, SeverityFatal, value, threshold, format, args...)
	return
}
