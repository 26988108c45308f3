package platform

import "github.com/ctvaccess/captvty-bridge/internal/ax"

// Reader resolves live handles into the host accessibility tree.
type Reader interface {
	// Foreground returns the current foreground window element.
	Foreground() (ax.Element, error)

	// Focused returns the element that currently has system focus.
	Focused() (ax.Element, error)
}

// Inputter synthesizes mouse and keyboard input at the OS level.
type Inputter interface {
	// MoveMouse positions the pointer at absolute screen coordinates.
	MoveMouse(x, y int) error

	// Click issues a synchronous down+up at the given coordinates.
	Click(x, y int, button MouseButton) error

	// Scroll issues one wheel event of the given signed delta at the given
	// coordinates. Positive delta scrolls up.
	Scroll(x, y, delta int) error

	// PressKey synthesizes a key down+up pair for a single character or a
	// named key token ("enter", "tab").
	PressKey(token string) error
}

// Announcer is the speech surface of the host screen reader.
type Announcer interface {
	// Message queues text for speech.
	Message(text string)

	// Interrupt cancels in-flight speech so the next Message is spoken
	// immediately.
	Interrupt()
}
