package hostvideo

import "github.com/veandco/go-sdl2/sdl"

// scancodeTable maps SDL scancodes to PS/2 scan code set 2 make codes for
// the common alphanumeric/navigation keys a ROM is likely to poll. This is
// the standard, publicly documented set-2 layout (not game-specific), used
// the same way on any PS/2-compatible host.
var scancodeTable = map[sdl.Scancode]uint8{
	sdl.SCANCODE_A: 0x1C, sdl.SCANCODE_B: 0x32, sdl.SCANCODE_C: 0x21,
	sdl.SCANCODE_D: 0x23, sdl.SCANCODE_E: 0x24, sdl.SCANCODE_F: 0x2B,
	sdl.SCANCODE_G: 0x34, sdl.SCANCODE_H: 0x33, sdl.SCANCODE_I: 0x43,
	sdl.SCANCODE_J: 0x3B, sdl.SCANCODE_K: 0x42, sdl.SCANCODE_L: 0x4B,
	sdl.SCANCODE_M: 0x3A, sdl.SCANCODE_N: 0x31, sdl.SCANCODE_O: 0x44,
	sdl.SCANCODE_P: 0x4D, sdl.SCANCODE_Q: 0x15, sdl.SCANCODE_R: 0x2D,
	sdl.SCANCODE_S: 0x1B, sdl.SCANCODE_T: 0x2C, sdl.SCANCODE_U: 0x3C,
	sdl.SCANCODE_V: 0x2A, sdl.SCANCODE_W: 0x1D, sdl.SCANCODE_X: 0x22,
	sdl.SCANCODE_Y: 0x35, sdl.SCANCODE_Z: 0x1A,

	sdl.SCANCODE_1: 0x16, sdl.SCANCODE_2: 0x1E, sdl.SCANCODE_3: 0x26,
	sdl.SCANCODE_4: 0x25, sdl.SCANCODE_5: 0x2E, sdl.SCANCODE_6: 0x36,
	sdl.SCANCODE_7: 0x3D, sdl.SCANCODE_8: 0x3E, sdl.SCANCODE_9: 0x46,
	sdl.SCANCODE_0: 0x45,

	sdl.SCANCODE_SPACE:  0x29,
	sdl.SCANCODE_RETURN: 0x5A,
	sdl.SCANCODE_ESCAPE: 0x76,
	sdl.SCANCODE_TAB:    0x0D,

	sdl.SCANCODE_UP:    0x75,
	sdl.SCANCODE_DOWN:  0x72,
	sdl.SCANCODE_LEFT:  0x6B,
	sdl.SCANCODE_RIGHT: 0x74,

	sdl.SCANCODE_LSHIFT: 0x12, sdl.SCANCODE_RSHIFT: 0x59,
	sdl.SCANCODE_LCTRL: 0x14, sdl.SCANCODE_LALT: 0x11,
}
