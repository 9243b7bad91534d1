package fmtlog

import (
	"runtime"
	"strings"
)

// caller captures the source position skip frames above the function that
// called caller itself (skip 1 is that function's own caller).
func caller(skip int) (location Location) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		location = Location{File: "?", Function: "?"}
		return
	}

	location.File = file
	location.Line = line
	location.Function = "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		location.Function = ShortFunctionName(fn.Name())
	}
	return
}

// callerPC returns the program counter of the call site skip frames above
// the function that called callerPC. Each call instruction has a distinct
// pc, so two calls on one source line are separate call sites.
func callerPC(skip int) (pc uintptr) {
	pc, _, _, _ = runtime.Caller(skip + 1)
	return
}

// ShortFunctionName reduces a fully qualified symbol to its innermost
// unqualified name, matching what legacy macro-based logging displays.
//
// Two symbol families are handled: legacy signatures qualify with "::" and
// end in an argument list ("ns::Class::method(int, float)" gives "method",
// "free_function(int)" gives "free_function"), while Go runtime symbols
// qualify with dots after a parenthesized receiver
// ("pkg/path.(*Type).Method" gives "Method"). A string with neither an
// argument list nor a dot qualifier is returned unchanged.
func ShortFunctionName(signature string) (name string) {
	paren := strings.IndexByte(signature, '(')

	// A parenthesis with no dot after it opens an argument list.
	if paren >= 0 && strings.LastIndexByte(signature, '.') < paren {
		if sep := strings.LastIndex(signature[:paren], "::"); sep >= 0 {
			name = signature[sep+2 : paren]
			return
		}
		name = signature[:paren]
		return
	}

	if dot := strings.LastIndexByte(signature, '.'); dot >= 0 {
		name = signature[dot+1:]
		return
	}

	name = signature
	return
}
