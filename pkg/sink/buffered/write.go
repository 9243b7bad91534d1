package buffered

import (
	"fmtlog/pkg/fmtlog"
)

// Enabled asks the wrapped backend so suppression still happens at the
// call site, before a record enters the queue.
func (h *Handler) Enabled(name string, severity fmtlog.Severity) (enabled bool) {
	enabled = h.next.Enabled(name, severity)
	return
}

// Emit enqueues one record without blocking. A full queue drops the
// record.
func (h *Handler) Emit(location fmtlog.Location, severity fmtlog.Severity, name string, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.metrics.Dropped.Add(1)
		return
	}

	rec := record{
		location: location,
		severity: severity,
		name:     name,
		message:  message,
	}

	select {
	case h.queue <- rec:
		h.metrics.Enqueued.Add(1)
	default:
		h.metrics.Dropped.Add(1)
	}
}
