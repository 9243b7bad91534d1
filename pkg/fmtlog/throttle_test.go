package fmtlog

import (
	"strings"
	"testing"
	"time"
)

func TestThrottleElapsedSinceLastEmission(t *testing.T) {
	backend := newCaptureBackend()
	clock := &ManualClock{}
	logger := NewWithClock(backend, "test_node", clock)

	base := time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)
	clock.Set(base)

	log := func(i int) {
		logger.FatalThrottle(10*time.Millisecond, "Throttled message: %d", i)
	}

	// Eligibility is measured from the last emission, not the last call.
	steps := []struct {
		at          time.Duration
		expectTotal int
	}{
		{at: 0, expectTotal: 1},                     // first call always emits
		{at: 1 * time.Millisecond, expectTotal: 1},  // 1ms elapsed, suppressed
		{at: 2 * time.Millisecond, expectTotal: 1},  // 2ms since emit, suppressed
		{at: 25 * time.Millisecond, expectTotal: 2}, // 25ms since emit
		{at: 26 * time.Millisecond, expectTotal: 2}, // 1ms since emit, suppressed
	}
	for i, step := range steps {
		clock.Set(base.Add(step.at))
		log(i)
		if backend.count() != step.expectTotal {
			t.Fatalf("call at +%v: expected %d total records, got %d", step.at, step.expectTotal, backend.count())
		}
	}

	records := backend.all()
	if records[0].Message != "Throttled message: 0" {
		t.Errorf("expected first emission from call 0, got %q", records[0].Message)
	}
	if records[1].Message != "Throttled message: 3" {
		t.Errorf("expected second emission from call 3, got %q", records[1].Message)
	}
}

func TestThrottleBoundaryIsEligible(t *testing.T) {
	backend := newCaptureBackend()
	clock := &ManualClock{}
	logger := NewWithClock(backend, "test_node", clock)

	base := time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)
	clock.Set(base)

	log := func() {
		logger.InfoThrottle(10*time.Millisecond, "boundary")
	}

	log()
	clock.Advance(10 * time.Millisecond) // elapsed == interval
	log()

	if backend.count() != 2 {
		t.Fatalf("expected emission exactly at the interval boundary, got %d records", backend.count())
	}
}

func TestThrottleSitesAreIndependent(t *testing.T) {
	backend := newCaptureBackend()
	clock := &ManualClock{}
	logger := NewWithClock(backend, "test_node", clock)
	clock.Set(time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		logger.WarnThrottle(time.Second, "site one")
		logger.WarnThrottle(time.Second, "site two")
	}

	if backend.count() != 2 {
		t.Fatalf("expected 1 record per site, got %d total", backend.count())
	}
}

func TestThrottleClockFailureFailsOpen(t *testing.T) {
	backend := newCaptureBackend()
	clock := &ManualClock{}
	logger := NewWithClock(backend, "test_node", clock)

	log := func(i int) (err error) {
		err = logger.WarnThrottle(time.Hour, "must not be lost: %d", i)
		return
	}

	// Clock never activated: Now fails. The failure is reported and the
	// requested message still goes out.
	err := log(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := backend.all()
	if len(records) != 2 {
		t.Fatalf("expected clock-error record plus requested record, got %d", len(records))
	}
	if records[0].Severity != SeverityError {
		t.Errorf("expected clock failure reported at ERROR, got %v", records[0].Severity)
	}
	if !strings.Contains(records[0].Message, ErrClockInactive.Error()) {
		t.Errorf("expected clock error text, got %q", records[0].Message)
	}
	if records[1].Severity != SeverityWarn || records[1].Message != "must not be lost: 7" {
		t.Errorf("expected requested record last, got %+v", records[1])
	}

	// Once the clock recovers, throttling resumes at the same site. The
	// failed call never rebased, so the first timed call is eligible.
	clock.Set(time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC))
	log(8)
	if backend.count() != 3 {
		t.Fatalf("expected first post-recovery call to emit, got %d records", backend.count())
	}

	// And the window now holds.
	clock.Advance(time.Minute)
	log(9)
	if backend.count() != 3 {
		t.Fatalf("expected call inside the window to be suppressed, got %d records", backend.count())
	}
}
