// Package scroll brings elements into a visible viewport by iteratively
// issuing wheel events and re-measuring position. There is no scroll-position
// API on the target application's custom lists, so the controller operates
// closed-loop: scroll, re-read the element's live bounds, decide again.
package scroll

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/geometry"
	"github.com/ctvaccess/captvty-bridge/internal/input"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
)

// StuckLimit is the number of consecutive attempts with a bit-identical
// element position after which the controller concludes the container cannot
// scroll further.
const StuckLimit = 10

// DefaultDelta is one wheel notch.
const DefaultDelta = 120

// Controller scrolls elements into view.
type Controller struct {
	reader platform.Reader
	syn    *input.Synthesizer
	log    *zap.Logger

	// Delta is the wheel amount per attempt. Positive scrolls up.
	Delta int
}

// New creates a Controller with the default wheel delta.
func New(reader platform.Reader, syn *input.Synthesizer, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.L()
	}
	return &Controller{reader: reader, syn: syn, log: log.Named("scroll"), Delta: DefaultDelta}
}

// IntoView scrolls until the element no longer trespasses outside the
// foreground window, the attempt budget is exhausted, or the element stops
// moving for StuckLimit consecutive attempts.
//
// container may be nil, in which case the nearest scrollable ancestor is
// used; if none exists the call logs and returns without scrolling. Callers
// must treat any nil return as best effort, not as a guarantee that the
// element is visible.
func (c *Controller) IntoView(el, container ax.Element, off geometry.Offset, maxAttempts int) error {
	window, err := c.reader.Foreground()
	if err != nil {
		return fmt.Errorf("foreground window: %w", err)
	}

	if container == nil {
		container = FindScrollableContainer(el)
	}
	if container == nil {
		c.log.Warn("no scrollable container found", zap.String("element", el.Name()))
		return nil
	}

	var prev ax.Rect
	havePrev := false
	stuck := 0

	for attempt := 0; attempt < maxAttempts; attempt++ {
		side, err := geometry.TrespassingSide(el, window, off)
		if err != nil {
			return fmt.Errorf("scroll attempt %d: %w", attempt, err)
		}
		c.log.Debug("trespassing", zap.Stringer("side", side), zap.Int("attempt", attempt))

		switch side {
		case geometry.SideNone:
			return nil
		case geometry.SideAbove:
			if err := c.syn.ScrollAt(container, c.Delta, 0, 0); err != nil {
				return err
			}
		case geometry.SideBelow:
			if err := c.syn.ScrollAt(container, -c.Delta, 0, 0); err != nil {
				return err
			}
		default:
			// Horizontal trespass has no defined scroll action.
			continue
		}

		loc, err := el.Location()
		if err != nil {
			return fmt.Errorf("re-reading element after scroll: %w", err)
		}
		if havePrev && loc == prev {
			stuck++
			if stuck >= StuckLimit {
				c.log.Debug("element position unchanged, container exhausted",
					zap.Int("attempts", attempt+1))
				return nil
			}
		} else {
			stuck = 0
		}
		prev, havePrev = loc, true
	}
	c.log.Debug("scroll attempt budget exhausted", zap.Int("maxAttempts", maxAttempts))
	return nil
}

// IntoViewAndClick scrolls the element into view best-effort and then clicks
// its offset center.
func (c *Controller) IntoViewAndClick(el, container ax.Element, off geometry.Offset, maxAttempts, xOffset, yOffset int) error {
	if err := c.IntoView(el, container, off, maxAttempts); err != nil {
		return err
	}
	return c.syn.ClickElement(el, xOffset, yOffset, platform.MouseLeft)
}

// FindScrollableContainer walks the ancestor chain for the nearest
// scroll-pane or scroll-bar, or a pane ancestor that has one as a direct
// child. Returns nil when nothing scrollable encloses the element.
func FindScrollableContainer(el ax.Element) ax.Element {
	for container := el.Parent(); container != nil; container = container.Parent() {
		switch container.Role() {
		case ax.RoleScrollPane, ax.RoleScrollBar:
			return container
		case ax.RolePane:
			for _, child := range container.Children() {
				if child.Role() == ax.RoleScrollPane || child.Role() == ax.RoleScrollBar {
					return child
				}
			}
		}
	}
	return nil
}
