//go:build windows

package windows

import "github.com/ctvaccess/captvty-bridge/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Inputter:  NewInputter(),
			Announcer: NewAnnouncer(),
		}, nil
	}
}
