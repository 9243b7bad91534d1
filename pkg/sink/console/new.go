// Console backend: writes one formatted line per record to an io.Writer.
package console

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"fmtlog/pkg/sink"
)

// Handler writes records as single lines. Severity tokens are colored when
// the destination is a terminal.
type Handler struct {
	mu     sync.Mutex
	out    io.Writer
	levels *sink.Levels
	color  bool

	metrics MetricStorage
}

// Creates new console backend. Color is enabled automatically when out is
// a terminal.
func New(out io.Writer, levels *sink.Levels) (handler *Handler) {
	handler = &Handler{
		out:    out,
		levels: levels,
	}
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		handler.color = true
	}
	return
}

// SetColor overrides the automatic terminal detection.
func (h *Handler) SetColor(enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.color = enabled
}
