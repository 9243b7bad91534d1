package fmtlog

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Render adapters for time-shaped values, so durations, timestamps and
// cycle rates read naturally in log templates.

// Seconds renders a duration as fractional seconds: "%v" of 800ms is
// "0.8s", "%.2f" is "0.80s".
type Seconds time.Duration

func (s Seconds) Format(state fmt.State, verb rune) {
	writeFloatUnit(state, verb, time.Duration(s).Seconds(), "s")
}

// Hz renders a cycle period as a frequency: "%v" of a 100ms period is
// "10Hz", "%.2f" is "10.00Hz". A zero or negative period renders "0Hz".
type Hz time.Duration

func (h Hz) Format(state fmt.State, verb rune) {
	period := time.Duration(h).Seconds()
	if period <= 0 {
		writeFloatUnit(state, verb, 0, "Hz")
		return
	}
	writeFloatUnit(state, verb, 1/period, "Hz")
}

// Stamp renders a wall-clock timestamp as "2006-01-02 15:04:05".
type Stamp time.Time

func (t Stamp) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(state, time.Time(t).Format(time.DateTime))
	default:
		// Surface the bad verb the way fmt does, so SprintfFormatter
		// rejects the whole call.
		fmt.Fprintf(state, "%%!%c(fmtlog.Stamp)", verb)
	}
}

func writeFloatUnit(state fmt.State, verb rune, value float64, unit string) {
	layout := byte('g')
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		layout = byte(verb)
	case 'v', 's':
	default:
		fmt.Fprintf(state, "%%!%c(float64=%g)", verb, value)
		return
	}

	precision, ok := state.Precision()
	if !ok {
		precision = -1
	}

	io.WriteString(state, strconv.FormatFloat(value, layout, precision, 64)+unit)
}
