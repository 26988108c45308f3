// Package geometry implements the low-level spatial queries the bridge uses
// to identify controls that expose no usable accessibility identity. The
// target application draws fixed-width columns and rows, so pixel dimensions
// are the most stable handle available.
package geometry

import (
	"fmt"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
)

// Side identifies where an element rectangle protrudes outside a reference
// window, if anywhere.
type Side int

const (
	SideNone Side = iota
	SideAbove
	SideBelow
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideAbove:
		return "above"
	case SideBelow:
		return "below"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Offset adjusts the effective edges of an element's rectangle before a
// containment check. Each field is added to the matching edge coordinate, so
// callers can shrink or grow the hit-box independently, e.g. to treat a
// partially visible row as visible enough.
type Offset struct {
	Left, Top, Right, Bottom int
}

// FindBySize scans root's descendants depth-first and returns the first
// element whose width equals width and/or height equals height. A zero
// dimension disables that filter; at least one should be non-zero. The scan
// order is the tree's child order, so results are deterministic for an
// identical tree shape. Returns nil when nothing matches.
func FindBySize(root ax.Element, width, height int) ax.Element {
	if root == nil {
		return nil
	}
	for _, child := range root.Children() {
		loc, err := child.Location()
		if err == nil &&
			(width == 0 || loc.Width == width) &&
			(height == 0 || loc.Height == height) {
			return child
		}
		if found := FindBySize(child, width, height); found != nil {
			return found
		}
	}
	return nil
}

// FindByName returns the first descendant (or root itself) whose name equals
// name, depth-first, or nil.
func FindByName(root ax.Element, name string) ax.Element {
	if root == nil {
		return nil
	}
	if root.Name() == name {
		return root
	}
	for _, child := range root.Children() {
		if found := FindByName(child, name); found != nil {
			return found
		}
	}
	return nil
}

// TrespassingSide reports on which side of the reference window the element
// protrudes. Both rectangles are fetched live; a stale handle is an error,
// never a guess. The offset is applied to the element's edges before the
// check. When the element protrudes on several sides at once exactly one is
// reported, in the precedence order below, above, right, left.
func TrespassingSide(element, window ax.Element, off Offset) (Side, error) {
	elemLoc, err := element.Location()
	if err != nil {
		return SideNone, fmt.Errorf("element location: %w", err)
	}
	winLoc, err := window.Location()
	if err != nil {
		return SideNone, fmt.Errorf("window location: %w", err)
	}

	left := elemLoc.Left + off.Left
	top := elemLoc.Top + off.Top
	right := elemLoc.Right() + off.Right
	bottom := elemLoc.Bottom() + off.Bottom

	insideHorizontal := left >= winLoc.Left && right <= winLoc.Right()
	insideVertical := top >= winLoc.Top && bottom <= winLoc.Bottom()
	if insideHorizontal && insideVertical {
		return SideNone, nil
	}
	switch {
	case top > winLoc.Bottom():
		return SideBelow, nil
	case bottom < winLoc.Top:
		return SideAbove, nil
	case left > winLoc.Right():
		return SideRight, nil
	case right < winLoc.Left:
		return SideLeft, nil
	}
	// Partially outside without fully clearing an edge: report the nearest
	// vertical side first, matching the scroll controller's needs.
	switch {
	case bottom > winLoc.Bottom():
		return SideBelow, nil
	case top < winLoc.Top:
		return SideAbove, nil
	case right > winLoc.Right():
		return SideRight, nil
	default:
		return SideLeft, nil
	}
}
