package journald

import (
	"bytes"
	"encoding/binary"
	"strings"

	"fmtlog/pkg/fmtlog"
)

// Maps fmtlog severities onto syslog priorities for the PRIORITY field.
func severityToPriority(severity fmtlog.Severity) (priority int) {
	switch {
	case severity >= fmtlog.SeverityFatal:
		priority = 2 // crit
	case severity >= fmtlog.SeverityError:
		priority = 3
	case severity >= fmtlog.SeverityWarn:
		priority = 4
	case severity >= fmtlog.SeverityInfo:
		priority = 6
	default:
		priority = 7 // debug
	}
	return
}

// Serializes one field in native journal framing. Values that contain a
// newline use the binary form: KEY\n<le64 length><data>\n. Everything else
// is the text form KEY=value\n.
// https://systemd.io/JOURNAL_EXPORT_FORMATS/#journal-export-format
func appendField(buf *bytes.Buffer, key string, value string) {
	if key == "" {
		return
	}

	if strings.Contains(value, "\n") {
		buf.WriteString(key)
		buf.WriteByte('\n')

		lenField := make([]byte, 8)
		binary.LittleEndian.PutUint64(lenField, uint64(len(value)))
		buf.Write(lenField)

		buf.WriteString(value)
		buf.WriteByte('\n')
		return
	}

	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte('\n')
}
