//go:build windows

package windows

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"

	"github.com/ctvaccess/captvty-bridge/internal/platform"
)

const (
	mouseEventfLeftDown  = 0x0002
	mouseEventfLeftUp    = 0x0004
	mouseEventfRightDown = 0x0008
	mouseEventfRightUp   = 0x0010
	mouseEventfWheel     = 0x0800

	keyEventfKeyUp = 0x0002
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procSetCursor  = user32.NewProc("SetCursorPos")
	procMouseEvent = user32.NewProc("mouse_event")
	procKeybdEvent = user32.NewProc("keybd_event")
	procVkKeyScanW = user32.NewProc("VkKeyScanW")
)

// Inputter synthesizes input through user32.
type Inputter struct {
	// PressDelay is the pause between down and up events. The target
	// application drops clicks that arrive faster than its repaint.
	PressDelay time.Duration
}

// NewInputter creates an Inputter with the default press delay.
func NewInputter() *Inputter {
	return &Inputter{PressDelay: 30 * time.Millisecond}
}

func (in *Inputter) MoveMouse(x, y int) error {
	ret, _, _ := procSetCursor.Call(uintptr(x), uintptr(y))
	if ret == 0 {
		return fmt.Errorf("SetCursorPos(%d, %d) failed", x, y)
	}
	return nil
}

func (in *Inputter) Click(x, y int, button platform.MouseButton) error {
	if err := in.MoveMouse(x, y); err != nil {
		return err
	}
	down, up := uintptr(mouseEventfLeftDown), uintptr(mouseEventfLeftUp)
	if button == platform.MouseRight {
		down, up = mouseEventfRightDown, mouseEventfRightUp
	}
	procMouseEvent.Call(down, uintptr(x), uintptr(y), 0, 0)
	time.Sleep(in.PressDelay)
	procMouseEvent.Call(up, uintptr(x), uintptr(y), 0, 0)
	return nil
}

func (in *Inputter) Scroll(x, y, delta int) error {
	if err := in.MoveMouse(x, y); err != nil {
		return err
	}
	// mouse_event takes the wheel delta as a signed 32-bit value.
	procMouseEvent.Call(mouseEventfWheel, uintptr(x), uintptr(y), uintptr(uint32(int32(delta))), 0)
	return nil
}

func (in *Inputter) PressKey(token string) error {
	vk, shift, err := virtualKey(token)
	if err != nil {
		return err
	}
	if shift {
		procKeybdEvent.Call(uintptr(vkShift), 0, 0, 0)
	}
	procKeybdEvent.Call(uintptr(vk), 0, 0, 0)
	time.Sleep(in.PressDelay)
	procKeybdEvent.Call(uintptr(vk), 0, keyEventfKeyUp, 0)
	if shift {
		procKeybdEvent.Call(uintptr(vkShift), 0, keyEventfKeyUp, 0)
	}
	return nil
}
