package fmtlog

import (
	"fmt"
	"strings"
)

// SprintfFormatter renders templates with fmt.Sprintf verbs. The fmt
// package reports template or argument mismatches inline with a "%!"
// marker instead of an error; the render is rejected when it carries more
// markers than the argument values themselves contain, since a surplus
// marker can only come from fmt and a malformed log call is a programming
// defect. Argument text quoting "%!" passes through untouched. A literal
// "%%!" in a template is consequently not representable.
type SprintfFormatter struct{}

func (SprintfFormatter) Render(format string, args ...any) (message string, err error) {
	message = fmt.Sprintf(format, args...)

	markers := strings.Count(message, "%!")
	for _, arg := range args {
		markers -= strings.Count(fmt.Sprint(arg), "%!")
	}
	if markers > 0 {
		err = fmt.Errorf("format '%s' does not match its %d argument(s)", format, len(args))
		message = ""
	}
	return
}
