package beats

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"fmtlog/pkg/fmtlog"
)

// Enabled answers from the shared level table.
func (h *Handler) Enabled(name string, severity fmtlog.Severity) (enabled bool) {
	enabled = h.levels.Enabled(name, severity)
	return
}

// Emit ships one record as a single lumberjack event.
func (h *Handler) Emit(location fmtlog.Location, severity fmtlog.Severity, name string, message string) {
	event := buildEvent(location, severity, name, message, h.identifier, time.Now())

	_, err := h.client.Send([]interface{}{event})
	if err != nil {
		h.metrics.Errors.Add(1)
		return
	}
	h.metrics.Written.Add(1)
}

// buildEvent lays the record out in ECS field names so standard beats
// pipelines can index it without a custom mapping.
func buildEvent(location fmtlog.Location, severity fmtlog.Severity, name string, message string, identifier string, at time.Time) (event map[string]interface{}) {
	event = map[string]interface{}{
		// Minimum required fields
		"@timestamp": at,
		"message":    message,

		"log": map[string]interface{}{
			"level":  strings.ToLower(severity.String()),
			"logger": name,
			"origin": map[string]interface{}{
				"file": map[string]interface{}{
					"name": filepath.Base(location.File),
					"line": location.Line,
				},
				"function": location.Function,
			},
		},
		"agent": map[string]interface{}{
			"name": identifier,
			"type": "filebeat",
			"pid":  os.Getpid(),
		},
		"process": map[string]interface{}{
			"pid": os.Getpid(),
		},
	}
	return
}
