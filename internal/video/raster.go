package video

// Composer register 0 field masks.
const (
	composerOutputEnable uint8 = 1 << 0
	composerNTSC         uint8 = 1 << 1
	composerLayer0Enable uint8 = 1 << 2
	composerLayer1Enable uint8 = 1 << 3
	composerZOrderMask   uint8 = 0x70
	composerSpriteEnable uint8 = 1 << 7
)

// hscale lives in composer register 1; 128 means 1x scale.
func (c *Chip) hscale() uint8 {
	v := c.regComposer[1]
	if v == 0 {
		return 128
	}
	return v
}

// Step advances the raster position by one CPU tick's worth of pixel clock
// and returns true on the tick a new frame begins. It renders at most one
// scan line per call, exactly as the real chip would emit one line's worth
// of video per horizontal sync interval.
func (c *Chip) Step() bool {
	c.scanPosX += c.stepAdvance
	newFrame := false

	if c.scanPosX >= ScanWidth {
		c.scanPosX -= ScanWidth

		fp := c.frontPorchY()
		if c.scanPosY >= fp && c.scanPosY < fp+ScreenHeight {
			c.renderLine(c.scanPosY - fp)
		}

		if c.ien&ISRLine != 0 && c.scanPosY == c.irqLine {
			c.isr |= ISRLine
		}
		if c.scanPosY == ScanHeight-1 {
			if c.ien&ISRSprCol != 0 && c.spriteCollisions != 0 {
				c.isr |= ISRSprCol | (c.spriteCollisions&0xF)<<4
			}
		}

		c.scanPosY++
		if c.scanPosY >= ScanHeight {
			c.scanPosY = 0
			if c.ien&ISRVSync != 0 {
				c.isr |= ISRVSync
			}
			c.frameCount++
			c.spriteCollisions = 0
			newFrame = true
		}
	}

	return newFrame
}

// renderLine produces one row of the framebuffer: sprite prepass, layer
// prepass, composer combine, then NTSC title-safe darkening.
func (c *Chip) renderLine(y uint16) {
	ctrl := c.regComposer[0]
	c.renderSpriteLine(y)

	if ctrl&composerLayer0Enable != 0 {
		c.renderLayerLine(0, y)
	}
	if ctrl&composerLayer1Enable != 0 {
		c.renderLayerLine(1, y)
	}

	if ctrl&composerOutputEnable == 0 {
		c.blankLine(y)
		return
	}

	zmode := (ctrl & composerZOrderMask) >> 4
	hs := c.hscale()

	for x := 0; x < ScreenWidth; x++ {
		srcX := x * int(hs) / 128
		if srcX >= ScreenWidth {
			srcX = ScreenWidth - 1
		}

		var l0, l1 uint8
		if ctrl&composerLayer0Enable != 0 {
			l0 = c.layerLine[0][srcX]
		}
		if ctrl&composerLayer1Enable != 0 {
			l1 = c.layerLine[1][srcX]
		}
		spr := c.spriteLineCol[srcX]
		sprZ := c.spriteLineZ[srcX]

		colorIdx := combineZOrder(zmode, l0, l1, spr, sprZ)
		c.plotPixel(x, y, colorIdx, ctrl&composerNTSC != 0)
	}
}

// combineZOrder implements the eight z-order composer modes from the
// video module's register protocol.
func combineZOrder(mode uint8, l0, l1, spr, sprZ uint8) uint8 {
	switch mode {
	case 0:
		return 0
	case 1:
		return l0
	case 2:
		return l1
	case 3:
		if l1 != 0 {
			return l1
		}
		return l0
	case 4:
		return spr
	case 5:
		switch sprZ {
		case 0:
			return l0
		case 1:
			if l0 != 0 {
				return l0
			}
			return spr
		default:
			if spr != 0 {
				return spr
			}
			return l0
		}
	case 6:
		switch sprZ {
		case 0:
			return l1
		case 1:
			if l1 != 0 {
				return l1
			}
			return spr
		default:
			if spr != 0 {
				return spr
			}
			return l1
		}
	default: // 7: full ordering rule
		switch sprZ {
		case 3:
			if spr != 0 {
				return spr
			}
			if l1 != 0 {
				return l1
			}
			return l0
		case 2:
			if l1 != 0 {
				return l1
			}
			if spr != 0 {
				return spr
			}
			return l0
		case 1:
			if l1 != 0 {
				return l1
			}
			if l0 != 0 {
				return l0
			}
			return spr
		default:
			if l1 != 0 {
				return l1
			}
			return l0
		}
	}
}

func (c *Chip) plotPixel(x int, y uint16, colorIdx uint8, ntsc bool) {
	r, g, b := PaletteRGB888(c.PaletteRGB444(colorIdx))
	if ntsc && isTitleUnsafe(x, int(y)) {
		r, g, b = r>>2, g>>2, b>>2
	}
	off := (int(y)*ScreenWidth + x) * 4
	c.Framebuffer[off] = r
	c.Framebuffer[off+1] = g
	c.Framebuffer[off+2] = b
	c.Framebuffer[off+3] = 0xFF
}

func (c *Chip) blankLine(y uint16) {
	off := int(y) * ScreenWidth * 4
	for x := 0; x < ScreenWidth; x++ {
		c.Framebuffer[off] = 0
		c.Framebuffer[off+1] = 0
		c.Framebuffer[off+2] = 0
		c.Framebuffer[off+3] = 0xFF
		off += 4
	}
}

const (
	titleSafeX = 0.067
	titleSafeY = 0.05
)

func isTitleUnsafe(x, y int) bool {
	marginX := int(ScreenWidth * titleSafeX)
	marginY := int(ScreenHeight * titleSafeY)
	return x < marginX || x >= ScreenWidth-marginX || y < marginY || y >= ScreenHeight-marginY
}
