package topology

// AppMode is the target application's current operating mode. It is derived
// from on-screen state, never stored: the user can switch modes out-of-band
// at any time, so every mode-dependent operation recomputes it.
type AppMode int

const (
	ModeOther AppMode = iota
	ModeDirect
	ModeRattrapage
	ModeTelechargement
)

// Display names of the mode buttons, matched exactly.
const (
	buttonDirect         = "DIRECT"
	buttonRattrapage     = "RATTRAPAGE"
	buttonTelechargement = "TÉLÉCHARGEMENT\nMANUEL"
)

func (m AppMode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeRattrapage:
		return "rattrapage"
	case ModeTelechargement:
		return "telechargement"
	default:
		return "other"
	}
}

// ButtonName returns the display name of the mode's toggle button, or ""
// for ModeOther.
func (m AppMode) ButtonName() string {
	switch m {
	case ModeDirect:
		return buttonDirect
	case ModeRattrapage:
		return buttonRattrapage
	case ModeTelechargement:
		return buttonTelechargement
	default:
		return ""
	}
}

func modeForButton(name string) AppMode {
	switch name {
	case buttonDirect:
		return ModeDirect
	case buttonRattrapage:
		return ModeRattrapage
	case buttonTelechargement:
		return ModeTelechargement
	default:
		return ModeOther
	}
}
