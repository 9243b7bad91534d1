package console

import "fmtlog/pkg/fmtlog"

// ANSI color codes for terminal output
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorBoldRed = "\033[1;31m"
)

// severityColor returns the color code for a severity token.
func severityColor(severity fmtlog.Severity) (code string) {
	switch severity {
	case fmtlog.SeverityDebug:
		code = colorGray
	case fmtlog.SeverityInfo:
		code = colorGreen
	case fmtlog.SeverityWarn:
		code = colorYellow
	case fmtlog.SeverityError:
		code = colorRed
	case fmtlog.SeverityFatal:
		code = colorBoldRed
	default:
		code = colorReset
	}
	return
}
