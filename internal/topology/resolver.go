// Package topology locates the target application's mode buttons, channel
// list, and program list inside an accessibility tree that exposes no stable
// identities for them. Everything here is geometric heuristics over the
// host's fixed layout: pixel widths, sibling offsets, and fixed child paths.
package topology

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/geometry"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
)

// Resolver answers mode and list-structure queries for one focus session.
// The index hint is per-instance state, so independent sessions (and tests)
// never contaminate each other.
type Resolver struct {
	reader platform.Reader
	layout Layout
	log    *zap.Logger

	mu   sync.Mutex
	hint int // -1 when unset
}

// New creates a Resolver with the given layout profile.
func New(reader platform.Reader, layout Layout, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.L()
	}
	return &Resolver{reader: reader, layout: layout, log: log.Named("topology"), hint: -1}
}

// Hint returns the cached mode-button index, or -1 when unset. Exposed so
// the session can persist it across runs.
func (r *Resolver) Hint() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hint
}

// SetHint seeds the cached mode-button index, typically from the on-disk
// cache at startup.
func (r *Resolver) SetHint(i int) {
	r.mu.Lock()
	r.hint = i
	r.mu.Unlock()
}

// ModeButtons locates the row of mode-toggle buttons and returns them keyed
// by display name. The scan walks the foreground window's direct children
// starting from the cached index hint (layout default when unset); a hit
// records the matching index, exhaustion drops the hint so the next call
// rescans from the default.
func (r *Resolver) ModeButtons() (map[string]ax.Element, error) {
	fg, err := r.reader.Foreground()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowUnavailable, err)
	}
	children := fg.Children()

	r.mu.Lock()
	start := r.hint
	r.mu.Unlock()
	if start < 0 {
		start = r.layout.ButtonIndexHint
	}
	if start >= len(children) {
		start = 0
	}

	for i := start; i < len(children); i++ {
		buttons := r.matchButtonColumn(children[i])
		if buttons == nil {
			continue
		}
		r.mu.Lock()
		r.hint = i
		r.mu.Unlock()
		r.log.Debug("mode buttons located", zap.Int("index", i), zap.Int("count", len(buttons)))
		return buttons, nil
	}

	// The hint was stale; drop it so the next call rescans from the default.
	r.mu.Lock()
	r.hint = -1
	r.mu.Unlock()
	r.log.Warn("mode button scan exhausted", zap.Int("start", start), zap.Int("children", len(children)))
	return nil, ErrButtonListUnavailable
}

// matchButtonColumn tests one foreground child against the layout: it must
// have the channel-column width and carry a pane at the fixed depth whose
// children include exactly the expected number of buttons.
func (r *Resolver) matchButtonColumn(candidate ax.Element) map[string]ax.Element {
	loc, err := candidate.Location()
	if err != nil || loc.Width != r.layout.ChannelColumnWidth {
		return nil
	}
	pane := candidate
	for d := 0; d < r.layout.ModeButtonPaneDepth; d++ {
		kids := pane.Children()
		if len(kids) == 0 {
			return nil
		}
		pane = kids[0]
	}
	if pane.Role() != ax.RolePane {
		return nil
	}
	buttons := make(map[string]ax.Element)
	for _, child := range pane.Children() {
		if child.Role() == ax.RoleButton {
			buttons[child.Name()] = child
		}
	}
	if len(buttons) != r.layout.ModeButtonCount {
		return nil
	}
	return buttons
}

// AppMode determines the current application mode: the mode button with the
// largest left-edge coordinate names the active mode. A missing button row
// degrades to ModeOther rather than failing, matching how the host behaves
// while a mode transition repaints the window.
func (r *Resolver) AppMode() (AppMode, error) {
	buttons, err := r.ModeButtons()
	if errors.Is(err, ErrButtonListUnavailable) {
		r.log.Warn("mode buttons not found, reporting other")
		return ModeOther, nil
	}
	if err != nil {
		return ModeOther, err
	}

	var rightMost ax.Element
	var rightMostLeft int
	for _, b := range buttons {
		loc, err := b.Location()
		if err != nil {
			continue
		}
		if rightMost == nil || loc.Left > rightMostLeft {
			rightMost, rightMostLeft = b, loc.Left
		}
	}
	if rightMost == nil {
		return ModeOther, ErrButtonListUnavailable
	}

	mode := modeForButton(rightMost.Name())
	if mode == ModeOther {
		r.log.Warn("unrecognized right-most mode button", zap.String("name", rightMost.Name()))
	}
	return mode, nil
}

// ChannelList returns the clickable representative element of every channel
// in the current mode's channel column. The tree shape around the column
// differs per mode and is branched on by the role of the width-matched
// element; the fixed child path to the representative is a structural
// assumption about the host's undocumented layout.
func (r *Resolver) ChannelList() ([]ax.Element, error) {
	fg, err := r.reader.Foreground()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowUnavailable, err)
	}

	// The column container itself shares the channel-list width, so the
	// probe looks strictly below the window's direct children: the first
	// width-matched element inside a column is a channel row widget.
	var probe ax.Element
	for _, child := range fg.Children() {
		if probe = geometry.FindBySize(child, r.layout.ChannelColumnWidth, 0); probe != nil {
			break
		}
	}
	if probe == nil {
		return nil, ErrChannelListUnavailable
	}

	mode, err := r.AppMode()
	if err != nil {
		return nil, err
	}

	var container ax.Element
	switch mode {
	case ModeRattrapage:
		if probe.Role() != ax.RoleCheckbox {
			return nil, &InvalidRoleError{Expected: "checkbox", Got: probe.Role()}
		}
		container = climb(probe, r.layout.RattrapageCheckboxClimb)
	case ModeDirect:
		switch probe.Role() {
		case ax.RoleButton:
			container = climb(probe, r.layout.DirectButtonClimb)
		case ax.RolePane:
			container = climb(probe, r.layout.DirectPaneClimb)
		default:
			return nil, &InvalidRoleError{Expected: "button or pane", Got: probe.Role()}
		}
	default:
		return nil, &UnsupportedModeError{Mode: mode}
	}
	if container == nil {
		return nil, ErrChannelListUnavailable
	}

	var reps []ax.Element
	for _, channel := range container.Children() {
		rep := representative(channel, r.layout.RepChildIndex, r.layout.RepSubIndex)
		if rep == nil {
			r.log.Warn("channel container without representative child", zap.String("name", channel.Name()))
			continue
		}
		reps = append(reps, rep)
	}
	if len(reps) == 0 {
		return nil, ErrChannelListUnavailable
	}
	return reps, nil
}

// climb walks up n parents, or returns nil if the chain is shorter.
func climb(el ax.Element, n int) ax.Element {
	for i := 0; i < n && el != nil; i++ {
		el = el.Parent()
	}
	return el
}

// representative picks children[i].children[j], or nil when the shape does
// not match.
func representative(el ax.Element, i, j int) ax.Element {
	kids := el.Children()
	if i >= len(kids) {
		return nil
	}
	grandKids := kids[i].Children()
	if j >= len(grandKids) {
		return nil
	}
	return grandKids[j]
}
