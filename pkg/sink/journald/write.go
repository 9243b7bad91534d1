package journald

import (
	"bytes"
	"os"
	"strconv"

	"fmtlog/pkg/fmtlog"
)

// Enabled answers from the shared level table.
func (h *Handler) Enabled(name string, severity fmtlog.Severity) (enabled bool) {
	enabled = h.levels.Enabled(name, severity)
	return
}

// Emit serializes one entry in native journal framing and sends it as a
// single datagram.
func (h *Handler) Emit(location fmtlog.Location, severity fmtlog.Severity, name string, message string) {
	payload := buildEntry(location, severity, name, message, h.identifier)

	err := h.send(payload)
	if err != nil {
		h.metrics.Errors.Add(1)
		return
	}
	h.metrics.Written.Add(1)
}

func buildEntry(location fmtlog.Location, severity fmtlog.Severity, name string, message string, identifier string) (payload []byte) {
	// Build ordered list of fields
	type field struct {
		key string
		val string
	}
	fields := []field{
		{key: "MESSAGE", val: message},
		{key: "PRIORITY", val: strconv.Itoa(severityToPriority(severity))},
		{key: "SYSLOG_IDENTIFIER", val: identifier},
		{key: "SYSLOG_PID", val: strconv.Itoa(os.Getpid())},
		{key: "LOGGER", val: name},
		{key: "CODE_FILE", val: location.File},
		{key: "CODE_LINE", val: strconv.Itoa(location.Line)},
		{key: "CODE_FUNC", val: location.Function},
	}

	var buf bytes.Buffer
	for _, field := range fields {
		if field.val == "" {
			continue
		}
		appendField(&buf, field.key, field.val)
	}

	payload = buf.Bytes()
	return
}

func (h *Handler) send(payload []byte) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err = h.conn.Write(payload)
	if err == nil {
		return
	}

	// Datagram too large for the socket buffer: hand the journal a sealed
	// memory file descriptor instead.
	if isMessageTooLarge(err) {
		err = h.sendViaMemfd(payload)
	}
	return
}
