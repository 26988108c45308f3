//go:build windows

package windows

import (
	"fmt"
	"unicode/utf16"
)

const (
	vkShift  = 0x10
	vkReturn = 0x0D
	vkTab    = 0x09
	vkEscape = 0x1B
	vkBack   = 0x08
	vkSpace  = 0x20
)

// namedKeys maps key tokens to virtual-key codes.
var namedKeys = map[string]byte{
	"enter":     vkReturn,
	"tab":       vkTab,
	"escape":    vkEscape,
	"backspace": vkBack,
	"space":     vkSpace,
}

// virtualKey resolves a single-character or named-key token to a virtual-key
// code, and reports whether shift must be held to produce it.
func virtualKey(token string) (vk byte, shift bool, err error) {
	if vk, ok := namedKeys[token]; ok {
		return vk, false, nil
	}
	runes := []rune(token)
	if len(runes) != 1 {
		return 0, false, fmt.Errorf("unknown key token: %q", token)
	}
	units := utf16.Encode(runes)
	if len(units) != 1 {
		return 0, false, fmt.Errorf("key %q is outside the basic multilingual plane", token)
	}
	ret, _, _ := procVkKeyScanW.Call(uintptr(units[0]))
	scan := int16(ret)
	if scan == -1 {
		return 0, false, fmt.Errorf("no virtual key for %q in the active keyboard layout", token)
	}
	return byte(scan & 0xFF), scan&0x0100 != 0, nil
}
