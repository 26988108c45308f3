// Package ax defines the boundary to the host accessibility tree.
//
// The screen reader hands the bridge live element handles; everything the
// engine knows about the target application it learns through this interface.
// Handles are transient: they stay valid only until the next repaint of the
// host application, so callers must re-resolve rather than cache them across
// anything that redraws the window (mode switch, dialog open or close).
package ax

import "errors"

// ErrElementStale is returned by Location when the underlying element has
// been destroyed by a host repaint.
var ErrElementStale = errors.New("element handle is stale")

// Role classifies an element. The target application custom-draws most of its
// controls, so only the handful of roles the heuristics branch on are named;
// everything else is RoleOther.
type Role int

const (
	RoleOther Role = iota
	RoleButton
	RoleCheckbox
	RolePane
	RoleScrollPane
	RoleScrollBar
	RoleWindow
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RoleCheckbox:
		return "checkbox"
	case RolePane:
		return "pane"
	case RoleScrollPane:
		return "scrollpane"
	case RoleScrollBar:
		return "scrollbar"
	case RoleWindow:
		return "window"
	default:
		return "other"
	}
}

// Element is a handle into the provider's tree.
//
// Location always performs a live fetch; the provider must not serve a value
// cached from before the element last moved. Name and Role may be cached by
// the provider, they do not change while a handle is valid.
type Element interface {
	Name() string
	Role() Role
	Location() (Rect, error)
	Parent() Element
	Children() []Element
	ChildCount() int
	// DoAction invokes the element's default accessibility action.
	DoAction() error
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	Left, Top, Width, Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y int) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether other lies fully inside r.
func (r Rect) Contains(other Rect) bool {
	return other.Left >= r.Left && other.Right() <= r.Right() &&
		other.Top >= r.Top && other.Bottom() <= r.Bottom()
}
