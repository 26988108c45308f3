// Package input turns element-relative intents into absolute synthetic
// mouse and keyboard events.
package input

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
)

// Synthesizer issues synthetic input through the platform backend.
type Synthesizer struct {
	in  platform.Inputter
	log *zap.Logger

	// Delay paces consecutive key presses. Zero presses back to back;
	// the recording dialog drops keystrokes when fed too fast.
	Delay time.Duration
}

// New creates a Synthesizer. A nil logger falls back to the global one.
func New(in platform.Inputter, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.L()
	}
	return &Synthesizer{in: in, log: log.Named("input")}
}

// ClickAt moves the pointer to absolute coordinates and issues a down+up
// event for the given button.
func (s *Synthesizer) ClickAt(x, y int, button platform.MouseButton) error {
	s.log.Debug("click", zap.Int("x", x), zap.Int("y", y), zap.Stringer("button", button))
	return s.in.Click(x, y, button)
}

// ClickElement clicks the element's current center shifted by the given
// offsets. The click is not verified to land on the intended control; the
// offsets are tuned against the host application's fixed layout.
func (s *Synthesizer) ClickElement(el ax.Element, xOffset, yOffset int, button platform.MouseButton) error {
	loc, err := el.Location()
	if err != nil {
		return fmt.Errorf("click element: %w", err)
	}
	x, y := loc.Center()
	return s.ClickAt(x+xOffset, y+yOffset, button)
}

// HoverElement positions the pointer over the element's offset center
// without clicking.
func (s *Synthesizer) HoverElement(el ax.Element, xOffset, yOffset int) error {
	loc, err := el.Location()
	if err != nil {
		return fmt.Errorf("hover element: %w", err)
	}
	x, y := loc.Center()
	return s.in.MoveMouse(x+xOffset, y+yOffset)
}

// ScrollAt positions the pointer over the element's offset center and issues
// one wheel event of the given signed delta. Positive delta scrolls up.
func (s *Synthesizer) ScrollAt(el ax.Element, delta, xOffset, yOffset int) error {
	loc, err := el.Location()
	if err != nil {
		return fmt.Errorf("scroll at element: %w", err)
	}
	x, y := loc.Center()
	s.log.Debug("scroll", zap.Int("x", x+xOffset), zap.Int("y", y+yOffset), zap.Int("delta", delta))
	return s.in.Scroll(x+xOffset, y+yOffset, delta)
}

// TypeText synthesizes one key down+up pair per token, in order. Tokens are
// single characters or named keys understood by the platform backend. Used
// to fill fixed-width numeric fields digit by digit.
func (s *Synthesizer) TypeText(tokens []string) error {
	for _, tok := range tokens {
		if err := s.in.PressKey(tok); err != nil {
			return fmt.Errorf("type %q: %w", tok, err)
		}
		if s.Delay > 0 {
			time.Sleep(s.Delay)
		}
	}
	return nil
}

// TypeString is TypeText over the characters of s.
func (s *Synthesizer) TypeString(text string) error {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return s.TypeText(tokens)
}
