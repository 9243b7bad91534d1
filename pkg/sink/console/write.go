package console

import (
	"fmt"
	"path/filepath"
	"time"

	"fmtlog/pkg/fmtlog"
)

// Fixed-width timestamps: the layout zero-pads nanoseconds to 9 digits so
// columns stay aligned across lines.
const stampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Enabled answers from the shared level table.
func (h *Handler) Enabled(name string, severity fmtlog.Severity) (enabled bool) {
	enabled = h.levels.Enabled(name, severity)
	return
}

// Emit writes one line: [timestamp] [name] [SEVERITY] message (file:line:func)
func (h *Handler) Emit(location fmtlog.Location, severity fmtlog.Severity, name string, message string) {
	line := formatLine(location, severity, name, message, time.Now(), h.colorEnabled())

	h.mu.Lock()
	_, err := fmt.Fprintln(h.out, line)
	h.mu.Unlock()

	if err != nil {
		h.metrics.Errors.Add(1)
		return
	}
	h.metrics.Written.Add(1)
}

func (h *Handler) colorEnabled() (enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	enabled = h.color
	return
}

func formatLine(location fmtlog.Location, severity fmtlog.Severity, name string, message string, at time.Time, color bool) (line string) {
	token := severity.String()
	if color {
		token = severityColor(severity) + token + colorReset
	}

	line = fmt.Sprintf("[%s] [%s] [%s] %s (%s:%d:%s)",
		at.Format(stampLayout),
		name,
		token,
		message,
		filepath.Base(location.File),
		location.Line,
		location.Function)
	return
}
