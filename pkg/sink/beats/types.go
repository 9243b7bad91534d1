package beats

import (
	"sync/atomic"

	lumberjack "github.com/elastic/go-lumber/client/v2"

	"fmtlog/pkg/sink"
)

// Handler ships records to a beats (lumberjack v2) endpoint such as
// logstash or a filebeat receiver.
type Handler struct {
	client *lumberjack.SyncClient
	levels *sink.Levels

	identifier string

	metrics MetricStorage
}

// Counters for events handled by this backend
type MetricStorage struct {
	Written atomic.Uint64
	Errors  atomic.Uint64
}

// Metrics returns counts of events shipped and send failures.
func (h *Handler) Metrics() (written uint64, errors uint64) {
	written = h.metrics.Written.Load()
	errors = h.metrics.Errors.Load()
	return
}
