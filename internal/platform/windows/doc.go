// Package windows implements the platform backends on Windows using the
// user32 input synthesis API (SetCursorPos, mouse_event, keybd_event), the
// same primitives the host screen reader uses for its own mouse emulation.
//
// The accessibility Reader is intentionally not provided here: the live tree
// belongs to the host screen reader, which installs its own Reader when it
// embeds the bridge.
package windows
