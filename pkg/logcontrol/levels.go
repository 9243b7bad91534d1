// Runtime log level control over D-Bus, following the systemd
// org.freedesktop.LogControl1 interface.
// https://www.freedesktop.org/software/systemd/man/org.freedesktop.LogControl1.html
package logcontrol

import (
	"fmt"

	"fmtlog/pkg/fmtlog"
)

// LogControl1 speaks in syslog level names. Levels above our scale clamp
// to the nearest severity.
func severityFromLevelName(level string) (severity fmtlog.Severity, err error) {
	switch level {
	case "debug":
		severity = fmtlog.SeverityDebug
	case "info":
		severity = fmtlog.SeverityInfo
	case "notice", "warning":
		severity = fmtlog.SeverityWarn
	case "err":
		severity = fmtlog.SeverityError
	case "crit", "alert", "emerg":
		severity = fmtlog.SeverityFatal
	default:
		err = fmt.Errorf("unknown log level '%s'", level)
	}
	return
}

func levelNameFromSeverity(severity fmtlog.Severity) (level string) {
	switch {
	case severity >= fmtlog.SeverityFatal:
		level = "crit"
	case severity >= fmtlog.SeverityError:
		level = "err"
	case severity >= fmtlog.SeverityWarn:
		level = "warning"
	case severity >= fmtlog.SeverityInfo:
		level = "info"
	default:
		level = "debug"
	}
	return
}
