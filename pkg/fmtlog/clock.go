package fmtlog

import (
	"errors"
	"sync"
	"time"
)

// SystemClock reads time.Now. The monotonic reading carried by time.Time
// gives throttle intervals steady-clock behavior across wall clock jumps.
type SystemClock struct{}

func (SystemClock) Now() (now time.Time, err error) {
	now = time.Now()
	return
}

// ErrClockInactive is returned by a ManualClock that has not been started
// or was stopped, the same failure mode an externally driven time source
// shows before its first update.
var ErrClockInactive = errors.New("clock is not active")

// ManualClock is an externally driven time source for simulated time and
// tests. It starts inactive; Set activates it.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	active bool
}

// Set activates the clock at the given instant.
func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	c.active = true
}

// Advance moves an active clock forward. No-op while inactive.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		c.now = c.now.Add(d)
	}
}

// Stop deactivates the clock; Now fails until Set is called again.
func (c *ManualClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
}

func (c *ManualClock) Now() (now time.Time, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		err = ErrClockInactive
		return
	}
	now = c.now
	return
}
