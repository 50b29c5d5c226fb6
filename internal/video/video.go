// Package video implements a VERA-style tile/sprite coprocessor: 128 KiB of
// video RAM with lazily-synced bit-depth-expanded shadow buffers, a 256
// entry palette, two tile/bitmap/text layers, 128 sprite descriptors, a
// raster state machine, and the composer that blends all three into a
// framebuffer.
package video

import lru "github.com/hashicorp/golang-lru/v2"

const (
	VRAMSize    = 0x20000
	PSGStart    = 0x1F9C0
	PaletteBase = 0x1FA00
	PaletteEnd  = 0x1FC00
	SpriteBase  = 0x1FC00

	NumSprites = 128

	ScanWidth  = 800
	ScanHeight = 525

	ScreenWidth  = 640
	ScreenHeight = 480
)

// OutputMode selects the pixel clock step_advance is derived from.
type OutputMode uint8

const (
	OutputVGA OutputMode = iota
	OutputNTSC
)

const (
	vgaFrontPorchY  = 10
	ntscFrontPorchY = 22
	vgaPixelFreq    = 25.175
	ntscPixelFreq   = 15.750 * 800 / 1000
)

// ISR bits.
const (
	ISRVSync   uint8 = 1 << 0
	ISRLine    uint8 = 1 << 1
	ISRSprCol  uint8 = 1 << 2
	ISRAudio   uint8 = 1 << 3
)

// Chip is the complete state of the video coprocessor.
type Chip struct {
	vram [VRAMSize]uint8

	vram4bpp []uint8
	vram2bpp []uint8
	vram1bpp []uint8
	shadowDirty bool

	palette [256]uint16 // 12-bit RGB packed low 12 bits

	sprites [NumSprites]SpriteDescriptor

	ioAddr   [2]uint32
	ioRdData [2]uint8
	ioInc    [2]uint8
	ioAddrSel uint8
	ioDCSel  uint8

	ien uint8
	isr uint8
	irqLine uint16

	regLayer    [2][7]uint8
	regComposer [16]uint8 // registers 0x9-0xC banked by DCSel live at [0:4] (DCSel 0) and [4:8] (DCSel 1)

	mode        OutputMode
	scanPosX    float64
	scanPosY    uint16
	stepAdvance float64
	frameCount  uint64

	layerCache *lru.Cache[uint32, *LayerProps]
	layers     [2]*LayerProps

	spriteLineCol  [ScreenWidth]uint8
	spriteLineZ    [ScreenWidth]uint8
	spriteLineMask [ScreenWidth]uint8
	spriteLineColl [ScreenWidth]uint8
	spriteCollisions uint8

	layerLine [2][ScreenWidth]uint8

	Framebuffer [ScreenWidth * ScreenHeight * 4]uint8

	AudioFIFOAlmostEmpty bool
	WarpMode             bool
}

// New creates a Chip with its default palette and VGA timing.
func New() *Chip {
	c := &Chip{}
	cache, err := lru.New[uint32, *LayerProps](16)
	if err != nil {
		panic(err)
	}
	c.layerCache = cache
	c.Reset()
	return c
}

// Reset restores power-on defaults: cleared I/O registers, the built-in
// default palette, and VGA timing.
func (c *Chip) Reset() {
	c.ioAddr = [2]uint32{}
	c.ioRdData = [2]uint8{}
	c.ioInc = [2]uint8{}
	c.ioAddrSel = 0
	c.ioDCSel = 0
	c.ien = 0
	c.isr = 0
	c.irqLine = 0
	c.regLayer = [2][7]uint8{}
	c.regComposer = [16]uint8{}
	c.scanPosX = 0
	c.scanPosY = 0
	c.frameCount = 0
	c.spriteCollisions = 0
	c.layerCache.Purge()
	c.layers = [2]*LayerProps{}
	c.loadDefaultPalette()
	c.SetOutputMode(OutputVGA)
}

func (c *Chip) SetOutputMode(mode OutputMode) {
	c.mode = mode
	switch mode {
	case OutputNTSC:
		c.stepAdvance = ntscPixelFreq
	default:
		c.stepAdvance = vgaPixelFreq
	}
}

func (c *Chip) frontPorchY() uint16 {
	if c.mode == OutputNTSC {
		return ntscFrontPorchY
	}
	return vgaFrontPorchY
}

// GetIRQOut reports the coprocessor's interrupt line: any enabled, pending
// status bit, including the audio FIFO condition folded into bit 3.
func (c *Chip) GetIRQOut() bool {
	isr := c.isr
	if c.AudioFIFOAlmostEmpty {
		isr |= ISRAudio
	}
	return isr&c.ien != 0
}

func (c *Chip) FrameCount() uint64 { return c.frameCount }

// ScanPosX reports the raster's current horizontal pixel position, for
// debug.CycleLogger's per-cycle trace (see debug.VideoStateReader).
func (c *Chip) ScanPosX() int { return int(c.scanPosX) }

// ScanPosY reports the raster's current scan line.
func (c *Chip) ScanPosY() uint16 { return c.scanPosY }

// VSyncPending reports whether the VSYNC status bit is currently latched.
func (c *Chip) VSyncPending() bool { return c.isr&ISRVSync != 0 }

// ReadSprite reads one raw byte of sprite index's 8-byte descriptor, for
// the cycle logger's sprite-0 trace column.
func (c *Chip) ReadSprite(index, field uint8) uint8 {
	if int(index) >= len(c.sprites) || int(field) >= 8 {
		return 0
	}
	return c.sprites[index].raw[field]
}
