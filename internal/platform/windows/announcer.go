//go:build windows

package windows

import (
	"go.uber.org/zap"
)

// Announcer is the standalone speech surface. When the bridge runs inside
// the host screen reader the embedding layer replaces it with the reader's
// own speech queue; on its own the bridge can only log what would be spoken.
type Announcer struct {
	log *zap.Logger
}

func NewAnnouncer() *Announcer {
	return &Announcer{log: zap.L().Named("speech")}
}

func (a *Announcer) Message(text string) {
	a.log.Info("announce", zap.String("text", text))
}

func (a *Announcer) Interrupt() {}
