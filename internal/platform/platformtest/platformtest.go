// Package platformtest provides recording fakes for the platform interfaces.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
)

// Event is one recorded input action, formatted for easy assertions:
// "move 10,20", "click 10,20 left", "scroll 10,20 -120", "key 5".
type Event string

// Inputter records every synthetic input call.
type Inputter struct {
	mu     sync.Mutex
	Events []Event
	// OnScroll, when set, runs after each recorded scroll. Tests use it to
	// simulate the host moving elements in response to wheel input.
	OnScroll func(delta int)
}

func (f *Inputter) record(e Event) {
	f.mu.Lock()
	f.Events = append(f.Events, e)
	f.mu.Unlock()
}

func (f *Inputter) MoveMouse(x, y int) error {
	f.record(Event(fmt.Sprintf("move %d,%d", x, y)))
	return nil
}

func (f *Inputter) Click(x, y int, button platform.MouseButton) error {
	f.record(Event(fmt.Sprintf("click %d,%d %s", x, y, button)))
	return nil
}

func (f *Inputter) Scroll(x, y, delta int) error {
	f.record(Event(fmt.Sprintf("scroll %d,%d %d", x, y, delta)))
	if f.OnScroll != nil {
		f.OnScroll(delta)
	}
	return nil
}

func (f *Inputter) PressKey(token string) error {
	f.record(Event("key " + token))
	return nil
}

// Clicks returns only the recorded click events.
func (f *Inputter) Clicks() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Event
	for _, e := range f.Events {
		if len(e) >= 5 && e[:5] == "click" {
			out = append(out, e)
		}
	}
	return out
}

// Reader serves fixed foreground and focus elements.
type Reader struct {
	Fg    ax.Element
	Focus ax.Element
	// Err, when set, is returned by both queries.
	Err error
}

func (r *Reader) Foreground() (ax.Element, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Fg, nil
}

func (r *Reader) Focused() (ax.Element, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Focus, nil
}

// Announcer records spoken messages.
type Announcer struct {
	mu       sync.Mutex
	Messages []string
}

func (a *Announcer) Message(text string) {
	a.mu.Lock()
	a.Messages = append(a.Messages, text)
	a.mu.Unlock()
}

func (a *Announcer) Interrupt() {}

// Spoken returns a copy of everything announced so far.
func (a *Announcer) Spoken() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.Messages...)
}
