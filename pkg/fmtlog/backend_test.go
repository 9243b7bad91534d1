package fmtlog

import (
	"sync"
	"testing"
)

// captureBackend records every emission for assertions, standing in for a
// real sink the way a swapped output handler would.
type captureBackend struct {
	mu       sync.Mutex
	disabled map[Severity]bool
	records  []capturedRecord
}

type capturedRecord struct {
	Location Location
	Severity Severity
	Name     string
	Message  string
}

func newCaptureBackend() (backend *captureBackend) {
	backend = &captureBackend{
		disabled: make(map[Severity]bool),
	}
	return
}

func (b *captureBackend) Enabled(name string, severity Severity) (enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	enabled = !b.disabled[severity]
	return
}

func (b *captureBackend) Emit(location Location, severity Severity, name string, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, capturedRecord{
		Location: location,
		Severity: severity,
		Name:     name,
		Message:  message,
	})
}

func (b *captureBackend) disable(severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled[severity] = true
}

func (b *captureBackend) enable(severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.disabled, severity)
}

func (b *captureBackend) all() (records []capturedRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	records = append(records, b.records...)
	return
}

func (b *captureBackend) count() (n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n = len(b.records)
	return
}

// abortFormatter fails the test if rendering is ever attempted. Used to
// prove that disabled severities never reach the formatter.
type abortFormatter struct {
	t *testing.T
}

func (f abortFormatter) Render(format string, args ...any) (message string, err error) {
	f.t.Helper()
	f.t.Fatalf("formatter invoked for format %q while severity disabled", format)
	return
}
