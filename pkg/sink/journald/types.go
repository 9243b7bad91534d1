package journald

import (
	"net"
	"sync"
	"sync/atomic"

	"fmtlog/pkg/sink"
)

// Default journald datagram socket
const socketPath = "/run/systemd/journal/socket"

// Handler sends records to systemd-journald over its native datagram
// protocol. Oversized payloads are passed as a sealed memfd instead.
type Handler struct {
	mu         sync.Mutex
	conn       *net.UnixConn
	levels     *sink.Levels
	identifier string

	metrics MetricStorage
}

// Counters for entries handled by this backend
type MetricStorage struct {
	Written atomic.Uint64
	Errors  atomic.Uint64
}

// Metrics returns counts of entries written and send failures.
func (h *Handler) Metrics() (written uint64, errors uint64) {
	written = h.metrics.Written.Load()
	errors = h.metrics.Errors.Load()
	return
}
