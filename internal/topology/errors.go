package topology

import (
	"errors"
	"fmt"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
)

var (
	// ErrWindowUnavailable means the target application's window could not
	// be resolved.
	ErrWindowUnavailable = errors.New("application window is not available")

	// ErrButtonListUnavailable means the mode-button row could not be
	// located in the foreground window.
	ErrButtonListUnavailable = errors.New("mode button list is not available")

	// ErrChannelListUnavailable means the channel column could not be
	// located.
	ErrChannelListUnavailable = errors.New("channel list is not available")
)

// InvalidRoleError reports a structural assumption violated by the host: an
// element was found where expected, but with the wrong role.
type InvalidRoleError struct {
	Expected string
	Got      ax.Role
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("expected %s, but found a %s", e.Expected, e.Got)
}

// UnsupportedModeError reports an operation attempted in an application mode
// with no defined behavior.
type UnsupportedModeError struct {
	Mode AppMode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("operation is not supported in mode %s", e.Mode)
}
