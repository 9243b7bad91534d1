// Buffered backend decorator: decouples logging call sites from slow
// destinations with a bounded queue and one writer goroutine.
package buffered

import (
	"fmtlog/pkg/fmtlog"
)

// Creates new buffered decorator over next. Capacity <= 0 selects a
// default sized from system memory.
func New(next fmtlog.Backend, capacity int) (handler *Handler) {
	if capacity <= 0 {
		capacity = defaultCapacity()
	}

	handler = &Handler{
		next:  next,
		queue: make(chan record, capacity),
		done:  make(chan struct{}),
	}

	go handler.drain()
	return
}

// drain forwards queued records to the wrapped backend until Close.
func (h *Handler) drain() {
	defer close(h.done)

	for rec := range h.queue {
		h.next.Emit(rec.location, rec.severity, rec.name, rec.message)
	}
}

// Close stops accepting records and waits for the queue to empty.
// Records emitted after Close are dropped.
func (h *Handler) Close() {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		close(h.queue)
	}
	h.mu.Unlock()

	<-h.done
}
