package buffered

import (
	"sync"
	"sync/atomic"

	"fmtlog/pkg/fmtlog"
)

// One queued record
type record struct {
	location fmtlog.Location
	severity fmtlog.Severity
	name     string
	message  string
}

// Handler decorates another backend with a bounded queue and a single
// writer goroutine. Emit never blocks the logging call site: when the
// queue is full the record is dropped and counted.
type Handler struct {
	next  fmtlog.Backend
	queue chan record

	mu     sync.RWMutex
	closed bool
	done   chan struct{}

	metrics MetricStorage
}

// Counters for records handled by this decorator
type MetricStorage struct {
	Enqueued atomic.Uint64
	Dropped  atomic.Uint64
}

// Metrics returns counts of records queued and records dropped on a full
// queue.
func (h *Handler) Metrics() (enqueued uint64, dropped uint64) {
	enqueued = h.metrics.Enqueued.Load()
	dropped = h.metrics.Dropped.Load()
	return
}
