package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left or right)", s)
	}
}

func (b MouseButton) String() string {
	if b == MouseRight {
		return "right"
	}
	return "left"
}
