// Package schedule models the recording window typed into the host's own
// scheduling dialog.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInverted is returned when the end of a window precedes its start.
var ErrInverted = errors.New("recording window ends before it starts")

// FieldCount is the number of date/time sub-fields per dialog row:
// hour, minute, day, month, year.
const FieldCount = 5

// Window is a start/end timestamp pair for one recording.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates and builds a recording window.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: %s < %s", ErrInverted, end.Format(time.DateTime), start.Format(time.DateTime))
	}
	return Window{Start: start, End: end}, nil
}

// Fields decomposes a timestamp the way the host's date widgets expect it
// typed: five zero-padded values in HH MM DD MM YYYY order.
func Fields(t time.Time) [FieldCount]string {
	return [FieldCount]string{
		fmt.Sprintf("%02d", t.Hour()),
		fmt.Sprintf("%02d", t.Minute()),
		fmt.Sprintf("%02d", t.Day()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%04d", t.Year()),
	}
}

// StartFields and EndFields are the per-row digit groups for the dialog.
func (w Window) StartFields() [FieldCount]string { return Fields(w.Start) }
func (w Window) EndFields() [FieldCount]string   { return Fields(w.End) }
