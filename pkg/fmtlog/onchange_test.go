package fmtlog

import "testing"

func TestOnChangeExact(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	log := func(value int) {
		FatalOnChange(logger, value, "Sensor value changed to: %d", value)
	}

	// The first observation is recorded silently; only the transition to
	// 200 emits.
	for _, value := range []int{100, 100, 100, 200, 200} {
		log(value)
	}

	records := backend.all()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Message != "Sensor value changed to: 200" {
		t.Errorf("expected transition message, got %q", records[0].Message)
	}

	// No memory beyond the last recorded value: returning to 100 emits.
	log(100)
	if backend.count() != 2 {
		t.Fatalf("expected return to old value to emit, got %d records", backend.count())
	}
}

func TestOnChangeThreshold(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	log := func(value float64) {
		FatalOnChangeBy(logger, value, 5.0, "Temperature: %.1f", value)
	}

	steps := []struct {
		value       float64
		expectTotal int
	}{
		{value: 20.0, expectTotal: 0}, // first observation, silent
		{value: 24.0, expectTotal: 0}, // delta 4.0 from 20.0
		{value: 25.5, expectTotal: 1}, // delta 5.5 from 20.0, rebases
		{value: 27.0, expectTotal: 1}, // delta 1.5 from 25.5
		{value: 31.0, expectTotal: 2}, // delta 5.5 from 25.5
	}
	for _, step := range steps {
		log(step.value)
		if backend.count() != step.expectTotal {
			t.Fatalf("value %.1f: expected %d total records, got %d", step.value, step.expectTotal, backend.count())
		}
	}

	records := backend.all()
	if records[0].Message != "Temperature: 25.5" {
		t.Errorf("expected first emission at 25.5, got %q", records[0].Message)
	}
	if records[1].Message != "Temperature: 31.0" {
		t.Errorf("expected second emission at 31.0, got %q", records[1].Message)
	}
}

func TestOnChangeThresholdDriftDoesNotAccumulate(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	log := func(value int) {
		InfoOnChangeBy(logger, value, 10, "level %d", value)
	}

	// Each step is below the threshold relative to the recorded baseline
	// (the first observation), and sub-threshold steps never rebase, so a
	// slow drift stays silent until it is 10 away from that baseline.
	for _, value := range []int{0, 4, 8, 9} {
		log(value)
	}
	if backend.count() != 0 {
		t.Fatalf("expected sub-threshold drift to stay silent, got %d records", backend.count())
	}

	log(10) // delta 10 from baseline 0
	if backend.count() != 1 {
		t.Fatalf("expected emission at threshold distance from baseline, got %d records", backend.count())
	}
}

func TestOnChangeThresholdUnsigned(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	log := func(value uint64) {
		WarnOnChangeBy(logger, value, uint64(100), "depth %d", value)
	}

	log(1000) // baseline
	log(950)  // decrease of 50: must not underflow, must not emit
	if backend.count() != 0 {
		t.Fatalf("expected no emission for sub-threshold decrease, got %d", backend.count())
	}

	log(850) // decrease of 150 from baseline 1000
	if backend.count() != 1 {
		t.Fatalf("expected emission for decrease past threshold, got %d", backend.count())
	}
}

func TestOnChangeStringValues(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	log := func(state string) {
		InfoOnChange(logger, state, "State transition to: %s", state)
	}

	for _, state := range []string{"idle", "idle", "active", "active", "idle"} {
		log(state)
	}

	records := backend.all()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Message != "State transition to: active" || records[1].Message != "State transition to: idle" {
		t.Errorf("unexpected transition messages: %+v", records)
	}
}

func TestOnChangeSitesAreIndependent(t *testing.T) {
	backend := newCaptureBackend()
	logger := New(backend, "test_node")

	for _, value := range []int{1, 2} {
		DebugOnChange(logger, value, "a: %d", value)
		DebugOnChange(logger, value, "b: %d", value)
	}

	// Each site sees 1 then 2: one emission per site.
	if backend.count() != 2 {
		t.Fatalf("expected 2 records across 2 sites, got %d", backend.count())
	}
}

func TestOnChangeSharedAcrossChildLoggers(t *testing.T) {
	backend := newCaptureBackend()
	parent := New(backend, "parent")
	child := parent.Child("worker")

	log := func(l *Logger, value int) {
		ErrorOnChange(l, value, "value %d", value)
	}

	// One textual call site used through both loggers: suppression state
	// belongs to the site, not to the individual logger handle.
	log(parent, 1)
	log(child, 1)
	if backend.count() != 0 {
		t.Fatalf("expected shared baseline to suppress both, got %d records", backend.count())
	}

	log(child, 2)
	if backend.count() != 1 {
		t.Fatalf("expected change through child to emit, got %d records", backend.count())
	}
}
