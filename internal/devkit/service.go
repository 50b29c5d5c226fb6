// Package devkit is the Fyne-based register/VRAM/sprite inspector: a
// debugging front end that reads the emulator core through the same
// read/write/step entry points any other collaborator uses, never
// reaching into cpu.CPU/video.Chip internals directly.
package devkit

import (
	"fmt"

	"nitro65/internal/cpu"
	"nitro65/internal/video"
)

// Bus is the subset of memory.Bus the inspector needs to dump RAM/ROM.
type Bus interface {
	Read(addr uint16) uint8
}

// Service aggregates a running core's state into the plain-text/struct
// snapshots the Fyne panels render, keeping state formatting separate from
// widget construction.
type Service struct {
	CPU   *cpu.CPU
	Video *video.Chip
	Bus   Bus
}

func New(c *cpu.CPU, v *video.Chip, bus Bus) *Service {
	return &Service{CPU: c, Video: v, Bus: bus}
}

// RegisterDump formats CPU register and flag state as plain text.
func (s *Service) RegisterDump() string {
	if s.CPU == nil {
		return "CPU not available\n"
	}
	c := s.CPU
	b := func(set bool) int {
		if set {
			return 1
		}
		return 0
	}

	text := "=== 65C02 Registers ===\n\n"
	text += fmt.Sprintf("  A:  %#04x (%3d)\n", c.A, c.A)
	text += fmt.Sprintf("  X:  %#04x (%3d)\n", c.X, c.X)
	text += fmt.Sprintf("  Y:  %#04x (%3d)\n", c.Y, c.Y)
	text += fmt.Sprintf("  SP: %#04x\n", c.SP)
	text += fmt.Sprintf("  PC: %#06x\n", c.PC)
	text += fmt.Sprintf("\nFlags (%#04x, N V - B D I Z C):\n", c.P)
	text += fmt.Sprintf("  N:%d V:%d B:%d D:%d I:%d Z:%d C:%d\n",
		b(c.GetFlag(cpu.FlagN)), b(c.GetFlag(cpu.FlagV)), b(c.GetFlag(cpu.FlagB)),
		b(c.GetFlag(cpu.FlagD)), b(c.GetFlag(cpu.FlagI)), b(c.GetFlag(cpu.FlagZ)),
		b(c.GetFlag(cpu.FlagC)))
	text += "\nState:\n"
	text += fmt.Sprintf("  WAI:          %v\n", c.WAI)
	text += fmt.Sprintf("  Stopped:      %v\n", c.Stopped)
	text += fmt.Sprintf("  ClockTicks:   %d\n", c.ClockTicks)
	text += fmt.Sprintf("  Instructions: %d\n", c.Instructions)
	return text
}

// MemoryDump formats a 256-byte hex+ASCII dump starting at addr, 16 bytes
// per line.
func (s *Service) MemoryDump(addr uint16) string {
	if s.Bus == nil {
		return "bus not available\n"
	}
	text := fmt.Sprintf("Memory Dump - Offset %#06x\n\n", addr)
	for line := 0; line < 16; line++ {
		lineAddr := addr + uint16(line*16)
		text += fmt.Sprintf("%04X  ", lineAddr)

		var ascii string
		for i := 0; i < 16; i++ {
			v := s.Bus.Read(lineAddr + uint16(i))
			text += fmt.Sprintf("%02X ", v)
			if v >= 32 && v < 127 {
				ascii += string(rune(v))
			} else {
				ascii += "."
			}
		}
		text += " |" + ascii + "|\n"
	}
	return text
}

// VideoRegisterDump formats the composer/raster/IRQ register state read
// through video.Chip.ReadIO, the same entry point the CPU's bus sees.
func (s *Service) VideoRegisterDump() string {
	if s.Video == nil {
		return "video chip not available\n"
	}
	v := s.Video
	text := "=== Video Registers ===\n\n"
	text += fmt.Sprintf("  IEN:  %#04x\n", v.ReadIO(video.RegIEN))
	text += fmt.Sprintf("  ISR:  %#04x\n", v.ReadIO(video.RegISR))
	text += fmt.Sprintf("  IRQL: %#04x\n", v.ReadIO(video.RegIRQL))
	text += fmt.Sprintf("  CTRL: %#04x\n", v.ReadIO(video.RegCTRL))
	text += fmt.Sprintf("  Frame: %d\n", v.FrameCount())
	return text
}

// PaletteSwatch returns the 12-bit RGB444 value of palette entry i, exactly
// what a palette viewer panel needs per swatch.
func (s *Service) PaletteSwatch(i uint8) uint16 {
	if s.Video == nil {
		return 0
	}
	return s.Video.PaletteRGB444(i)
}

// TilePixel reads one 4bpp pixel from VRAM at the given tile index/row/col,
// the shape the teacher's TileViewer raster callback decodes per pixel.
func (s *Service) TilePixel(tileBase uint32, tileIndex uint32, tileSize, row, col int) uint8 {
	if s.Video == nil {
		return 0
	}
	bytesPerRow := uint32(tileSize) / 2
	tileBytes := bytesPerRow * uint32(tileSize)
	addr := tileBase + tileIndex*tileBytes + uint32(row)*bytesPerRow + uint32(col/2)
	raw := s.Video.Read(addr)
	if col%2 == 0 {
		return raw & 0xF
	}
	return raw >> 4
}

// SpriteRow summarizes one of the 128 sprite descriptors for the sprite
// table viewer, reading the raw attribute bytes back out of VRAM through
// the public Read rather than any unexported descriptor type.
type SpriteRow struct {
	Index   int
	X, Y    int16
	Addr    uint32
	ZDepth  uint8
	Enabled bool
}

// spriteTableBase is the top of VRAM where the 128 8-byte sprite
// descriptors are aliased, per spec.md §4.2.
const (
	spriteTableBase = video.VRAMSize - 128*8
	spriteEntrySize = 8
)

// Sprites reads all 128 sprite descriptors' raw bytes back out of VRAM
// through the public Read, decoding only the fields the table view shows.
func (s *Service) Sprites() []SpriteRow {
	if s.Video == nil {
		return nil
	}
	rows := make([]SpriteRow, 128)
	for i := range rows {
		base := uint32(spriteTableBase + i*spriteEntrySize)
		var raw [8]uint8
		for j := range raw {
			raw[j] = s.Video.Read(base + uint32(j))
		}
		x := int16(uint16(raw[2]) | uint16(raw[3]&0x3)<<8)
		y := int16(uint16(raw[4]) | uint16(raw[5]&0x3)<<8)
		zDepth := (raw[6] >> 2) & 0x3
		rows[i] = SpriteRow{
			Index:   i,
			X:       x,
			Y:       y,
			Addr:    (uint32(raw[0]) | uint32(raw[1]&0x7F)<<8) << 5,
			ZDepth:  zDepth,
			Enabled: zDepth != 0,
		}
	}
	return rows
}
