package video

// defaultPalette is the chip's power-on 256-entry 12-bit RGB palette,
// entry 0 is black and entry 1 is white with the remainder a standard
// 6x6x6-ish ramp used by retro tile/sprite coprocessors of this class.
var defaultPalette = [256]uint16{
	0x000, 0xfff, 0x800, 0xafe, 0xc4c, 0x0c5, 0x00a, 0xee7, 0xd85, 0x640, 0xf77, 0x333, 0x777, 0xaf6, 0x08f, 0xbbb,
	0x000, 0x111, 0x222, 0x333, 0x444, 0x555, 0x666, 0x777, 0x888, 0x999, 0xaaa, 0xbbb, 0xccc, 0xddd, 0xeee, 0xfff,
	0x211, 0x433, 0x644, 0x866, 0xa88, 0xc99, 0xfbb, 0x211, 0x422, 0x633, 0x844, 0xa55, 0xc66, 0xf77, 0x200, 0x411,
	0x611, 0x822, 0xa22, 0xc33, 0xf33, 0x200, 0x400, 0x600, 0x800, 0xa00, 0xc00, 0xf00, 0x221, 0x443, 0x664, 0x886,
	0xaa8, 0xcc9, 0xfeb, 0x211, 0x432, 0x653, 0x874, 0xa95, 0xcb6, 0xfd7, 0x210, 0x431, 0x651, 0x862, 0xa82, 0xca3,
	0xfc3, 0x210, 0x430, 0x640, 0x860, 0xa80, 0xc90, 0xfb0, 0x121, 0x343, 0x564, 0x786, 0x9a8, 0xbc9, 0xdfb, 0x121,
	0x342, 0x463, 0x684, 0x8a5, 0x9c6, 0xbf7, 0x120, 0x241, 0x461, 0x582, 0x6a2, 0x8c3, 0x9f3, 0x120, 0x240, 0x360,
	0x480, 0x5a0, 0x6c0, 0x7f0, 0x121, 0x343, 0x465, 0x686, 0x8a8, 0x9ca, 0xbfc, 0x121, 0x242, 0x364, 0x485, 0x5a6,
	0x6c8, 0x7f9, 0x020, 0x141, 0x162, 0x283, 0x2a4, 0x3c5, 0x3f6, 0x020, 0x041, 0x061, 0x082, 0x0a2, 0x0c3, 0x0f3,
	0x122, 0x344, 0x466, 0x688, 0x8aa, 0x9cc, 0xbff, 0x122, 0x244, 0x366, 0x488, 0x5aa, 0x6cc, 0x7ff, 0x022, 0x144,
	0x166, 0x288, 0x2aa, 0x3cc, 0x3ff, 0x022, 0x044, 0x066, 0x088, 0x0aa, 0x0cc, 0x0ff, 0x112, 0x334, 0x456, 0x668,
	0x88a, 0x9ac, 0xbcf, 0x112, 0x224, 0x346, 0x458, 0x56a, 0x68c, 0x79f, 0x002, 0x114, 0x126, 0x238, 0x24a, 0x35c,
	0x36f, 0x002, 0x014, 0x016, 0x028, 0x02a, 0x03c, 0x03f, 0x112, 0x334, 0x546, 0x768, 0x98a, 0xb9c, 0xdbf, 0x112,
	0x324, 0x436, 0x648, 0x85a, 0x96c, 0xb7f, 0x102, 0x214, 0x416, 0x528, 0x62a, 0x83c, 0x93f, 0x102, 0x204, 0x306,
	0x408, 0x50a, 0x60c, 0x70f, 0x212, 0x434, 0x646, 0x868, 0xa8a, 0xc9c, 0xfbe, 0x211, 0x423, 0x635, 0x847, 0xa59,
	0xc6b, 0xf7d, 0x201, 0x413, 0x615, 0x826, 0xa28, 0xc3a, 0xf3c, 0x201, 0x403, 0x604, 0x806, 0xa08, 0xc09, 0xf0b,
}

func (c *Chip) loadDefaultPalette() {
	c.palette = defaultPalette
	c.syncPaletteShadow()
}

// syncPaletteShadow rewrites the palette-aliased VRAM window (little-endian
// 2 bytes per entry) from c.palette, the shape the chip exposes to CPU
// reads at 0x1FA00-0x1FBFF.
func (c *Chip) syncPaletteShadow() {
	for i, entry := range c.palette {
		off := PaletteBase + i*2
		c.vram[off] = uint8(entry)
		c.vram[off+1] = uint8(entry >> 8)
	}
}

// refreshPaletteEntry re-derives c.palette[i] from the aliased VRAM bytes;
// called after a raw VRAM write lands in the palette window.
func (c *Chip) refreshPaletteEntry(i int) {
	off := PaletteBase + i*2
	c.palette[i] = uint16(c.vram[off]) | uint16(c.vram[off+1])<<8&0x0F00
}

// PaletteRGB444 returns the raw 12-bit RGB value for palette index i.
func (c *Chip) PaletteRGB444(i uint8) uint16 {
	return c.palette[i] & 0x0FFF
}

// PaletteRGB888 expands a 12-bit palette entry to 8 bits per channel by bit
// replication, the conversion the host presenter needs for an RGBA
// framebuffer.
func PaletteRGB888(rgb444 uint16) (r, g, b uint8) {
	r4 := uint8(rgb444>>8) & 0xF
	g4 := uint8(rgb444>>4) & 0xF
	b4 := uint8(rgb444) & 0xF
	return r4<<4 | r4, g4<<4 | g4, b4<<4 | b4
}
