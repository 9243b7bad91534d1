package console

import "sync/atomic"

// Counters for lines handled by this backend
type MetricStorage struct {
	Written atomic.Uint64
	Errors  atomic.Uint64
}

// Metrics returns counts of lines written and write failures.
func (h *Handler) Metrics() (written uint64, errors uint64) {
	written = h.metrics.Written.Load()
	errors = h.metrics.Errors.Load()
	return
}
