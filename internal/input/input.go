// Package input implements the PS/2 keyboard and mouse register shims
// exposed at the memory bus's I/O slots (spec.md §4.3): a FIFO per device,
// a status register, and a data register, which is what original_source's
// bit-banged shift-register protocol (ps2.c/ps2.h) reduces to once it's
// observed only at the byte-stream level a memory-mapped CPU core can see.
package input

const fifoSize = 32

// fifo is a small ring buffer of pending PS/2 bytes (scancodes for the
// keyboard, 3-byte movement packets for the mouse), mirroring the 32-byte
// ps2_buffer_t ring original_source/ps2.c drains one byte per host poll.
type fifo struct {
	data   [fifoSize]uint8
	oldest int
	num    int
}

func (f *fifo) canFit(n int) bool { return f.num+n <= fifoSize }

func (f *fifo) push(b uint8) bool {
	if !f.canFit(1) {
		return false
	}
	f.data[(f.oldest+f.num)%fifoSize] = b
	f.num++
	return true
}

func (f *fifo) pop() (uint8, bool) {
	if f.num == 0 {
		return 0, false
	}
	b := f.data[f.oldest]
	f.oldest = (f.oldest + 1) % fifoSize
	f.num--
	return b, true
}

func (f *fifo) empty() bool { return f.num == 0 }

// Keyboard register offsets within the PS/2 keyboard I/O slot.
const (
	kbdRegData   = 0x00 // read: pop oldest scancode
	kbdRegStatus = 0x01 // bit0: FIFO non-empty
)

// Keyboard is a scancode FIFO fed by the host key-event pump and drained by
// ROM code polling kbdRegStatus/kbdRegData. It implements memory.IOHandler.
type Keyboard struct {
	scancodes fifo
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

// PushScancode enqueues a raw PS/2 scancode (make or break code, including
// any 0xE0 prefix byte) from the host keyboard driver. It reports whether
// the byte was accepted; a full FIFO silently drops it, as on real hardware.
func (k *Keyboard) PushScancode(b uint8) bool { return k.scancodes.push(b) }

func (k *Keyboard) ReadIO(addr uint16) uint8 {
	switch addr {
	case kbdRegData:
		b, _ := k.scancodes.pop()
		return b
	case kbdRegStatus:
		if !k.scancodes.empty() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (k *Keyboard) WriteIO(addr uint16, value uint8) {
	// No host-to-device commands modeled (LEDs, typematic rate, reset).
}

// Mouse button bit positions within a movement packet's status byte, per
// original_source/ps2.c's mouse_send: bit3 is always set, bits 4/5 carry
// the X/Y sign, and bits 6/7 the overflow flags (unused by this model
// since motion is pre-clamped before a packet is ever built).
const (
	mouseBtnLeft   = 1 << 0
	mouseBtnRight  = 1 << 1
	mouseBtnMiddle = 1 << 2
)

// Mouse register offsets within the PS/2 mouse I/O slot.
const (
	mouseRegData   = 0x00
	mouseRegStatus = 0x01
)

// Mouse is a 3-byte-packet FIFO fed by host pointer motion/button events.
// It implements memory.IOHandler.
type Mouse struct {
	packets fifo
	buttons uint8
}

func NewMouse() *Mouse { return &Mouse{} }

// Move reports relative pointer motion, clamping to the signed 9-bit range
// a single packet can carry (±256/±255, per mouse_send_state) and
// enqueueing as many packets as needed to drain larger deltas.
func (m *Mouse) Move(dx, dy int) {
	for dx != 0 || dy != 0 {
		x := clamp9(dx)
		y := clamp9(dy)
		if !m.send(x, y) {
			return
		}
		dx -= x
		dy -= y
	}
}

// SetButton updates a button's pressed state (0=left, 1=right, 2=middle)
// and flushes an immediate zero-motion packet, matching a real PS/2 mouse
// reporting button changes as soon as they happen rather than on the next
// poll.
func (m *Mouse) SetButton(button int, pressed bool) {
	bit := uint8(1) << uint(button)
	if pressed {
		m.buttons |= bit
	} else {
		m.buttons &^= bit
	}
	m.send(0, 0)
}

func clamp9(v int) int {
	switch {
	case v > 255:
		return 255
	case v < -256:
		return -256
	default:
		return v
	}
}

func (m *Mouse) send(x, y int) bool {
	if !m.packets.canFit(3) {
		return false
	}
	byte0 := uint8((y>>9)&1)<<5 | uint8((x>>9)&1)<<4 | 1<<3 | m.buttons&0x7
	m.packets.push(byte0)
	m.packets.push(uint8(x))
	m.packets.push(uint8(y))
	return true
}

func (m *Mouse) ReadIO(addr uint16) uint8 {
	switch addr {
	case mouseRegData:
		b, _ := m.packets.pop()
		return b
	case mouseRegStatus:
		if !m.packets.empty() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (m *Mouse) WriteIO(addr uint16, value uint8) {
	// No host-to-device commands modeled (sample rate, resolution).
}
