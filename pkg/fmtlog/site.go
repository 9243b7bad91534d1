package fmtlog

import (
	"sync"
	"time"
)

// siteState is the per-call-site suppression slot. A site only ever runs
// one policy, so the slot carries all three shapes. Created on first use,
// never removed; survives for the life of the logger lineage.
type siteState struct {
	mu sync.Mutex

	emitted bool // once policy

	lastEmit time.Time // throttle policy; zero means never

	lastValue any  // on-change policies; last recorded baseline
	hasLast   bool // false until the first observation
}

// site returns the state slot for a call site, creating it on first use.
func (l *Logger) site(pc uintptr) (state *siteState) {
	if v, ok := l.sites.Load(pc); ok {
		state = v.(*siteState)
		return
	}
	v, _ := l.sites.LoadOrStore(pc, &siteState{})
	state = v.(*siteState)
	return
}
