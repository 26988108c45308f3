package topology

// Layout holds the pixel constants and structural indices that identify the
// target application's controls. They describe one specific version of the
// host's fixed layout; alternate host versions swap in a different Layout
// without touching any caller.
type Layout struct {
	// ChannelColumnWidth is the fixed pixel width of the channel-list
	// column, the most reliable landmark in the window.
	ChannelColumnWidth int `mapstructure:"channel_column_width"`

	// ModeButtonCount is the number of mode-toggle buttons the pane row
	// must contain for a candidate column to be accepted.
	ModeButtonCount int `mapstructure:"mode_button_count"`

	// ModeButtonPaneDepth is how many first-child hops below the candidate
	// column the button pane sits.
	ModeButtonPaneDepth int `mapstructure:"mode_button_pane_depth"`

	// ButtonIndexHint is the default foreground-child index at which the
	// mode-button scan starts.
	ButtonIndexHint int `mapstructure:"button_index_hint"`

	// Parent hops from the role-matched element up to the channel list
	// container, per mode and role.
	RattrapageCheckboxClimb int `mapstructure:"rattrapage_checkbox_climb"`
	DirectButtonClimb       int `mapstructure:"direct_button_climb"`
	DirectPaneClimb         int `mapstructure:"direct_pane_climb"`

	// Fixed child path from a channel container to its clickable
	// representative: children[RepChildIndex].children[RepSubIndex].
	RepChildIndex int `mapstructure:"rep_child_index"`
	RepSubIndex   int `mapstructure:"rep_sub_index"`

	// ProgramListHeaderCount is how many leading children of the program
	// list are header controls rather than programs.
	ProgramListHeaderCount int `mapstructure:"program_list_header_count"`
}

// DefaultLayout matches the host version the offsets were tuned against.
func DefaultLayout() Layout {
	return Layout{
		ChannelColumnWidth:      244,
		ModeButtonCount:         3,
		ModeButtonPaneDepth:     1,
		ButtonIndexHint:         3,
		RattrapageCheckboxClimb: 4,
		DirectButtonClimb:       8,
		DirectPaneClimb:         6,
		RepChildIndex:           3,
		RepSubIndex:             1,
		ProgramListHeaderCount:  7,
	}
}
