package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
//
// Reader may be nil even on a supported OS: the live accessibility tree is
// owned by the host screen reader, which installs its own Reader when it
// embeds the bridge. The CLI fails gracefully when a command needs one.
type Provider struct {
	Reader    Reader
	Inputter  Inputter
	Announcer Announcer
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("captvty-bridge is not supported on %s/%s; supported: windows/amd64, windows/386", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
