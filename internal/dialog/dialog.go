// Package dialog provides the terminal dialogs the bridge opens on behalf of
// the user: list choices that can grow while open, and a start/end picker for
// recording windows.
package dialog

import (
	"context"
	"errors"

	"github.com/ctvaccess/captvty-bridge/internal/schedule"
)

// ErrCancelled is returned when the user dismisses a dialog without choosing.
var ErrCancelled = errors.New("dialog cancelled")

// Picker presents a list of labels and returns the chosen index. Append adds
// an item while the dialog is open; it is safe to call from another goroutine
// and is a no-op once the dialog has closed.
type Picker interface {
	Pick(ctx context.Context, title string, items []string) (int, error)
	Append(item string)
}

// RangePicker asks the user for a recording window.
type RangePicker interface {
	PickRange(ctx context.Context, title string, initial schedule.Window) (schedule.Window, error)
}
