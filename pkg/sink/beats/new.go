// Beats backend: ships records to a lumberjack v2 endpoint.
package beats

import (
	"fmt"
	"time"

	lumberjack "github.com/elastic/go-lumber/client/v2"

	"fmtlog/pkg/sink"
)

// Creates new beats output backend. identifier names this process in the
// shipped events.
func New(endpoint string, identifier string, levels *sink.Levels) (handler *Handler, err error) {
	compression := lumberjack.CompressionLevel(0)
	timeout := lumberjack.Timeout(3 * time.Second)

	client, err := lumberjack.SyncDial(endpoint, compression, timeout)
	if err != nil {
		err = fmt.Errorf("failed connection to beats server: %w", err)
		return
	}

	handler = &Handler{
		client:     client,
		levels:     levels,
		identifier: identifier,
	}
	return
}

// Shutdown closes the connection to the beats server.
func (h *Handler) Shutdown() (err error) {
	if h == nil {
		return
	}
	if h.client != nil {
		err = h.client.Close()
	}
	return
}
