package fmtlog

import (
	"fmt"
	"strconv"
)

func (s Severity) String() (text string) {
	switch s {
	case SeverityDebug:
		text = "DEBUG"
	case SeverityInfo:
		text = "INFO"
	case SeverityWarn:
		text = "WARN"
	case SeverityError:
		text = "ERROR"
	case SeverityFatal:
		text = "FATAL"
	default:
		text = strconv.Itoa(int(s))
	}
	return
}

// ParseSeverity maps a level name (case-sensitive, as printed by String)
// back to a Severity.
func ParseSeverity(text string) (severity Severity, err error) {
	switch text {
	case "DEBUG":
		severity = SeverityDebug
	case "INFO":
		severity = SeverityInfo
	case "WARN":
		severity = SeverityWarn
	case "ERROR":
		severity = SeverityError
	case "FATAL":
		severity = SeverityFatal
	default:
		err = fmt.Errorf("unknown severity '%s'", text)
	}
	return
}
