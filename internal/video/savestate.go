package video

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// savestateVersion guards against loading a save produced by an
// incompatible build of the chip.
const savestateVersion = 1

// snapshot is the serializable subset of Chip state. Cached shadow buffers
// and LayerProps are rebuilt lazily on first use after a load, so they are
// deliberately excluded.
type snapshot struct {
	Version int

	VRAM    [VRAMSize]uint8
	Palette [256]uint16
	Sprites [NumSprites][8]uint8

	IOAddr    [2]uint32
	IORdData  [2]uint8
	IOInc     [2]uint8
	IOAddrSel uint8
	IODCSel   uint8

	IEN     uint8
	ISR     uint8
	IRQLine uint16

	RegLayer    [2][7]uint8
	RegComposer [16]uint8

	Mode       OutputMode
	ScanPosX   float64
	ScanPosY   uint16
	FrameCount uint64

	AudioFIFOAlmostEmpty bool
	WarpMode             bool
}

func init() {
	gob.Register(snapshot{})
}

// SaveState serializes the chip to a gzip-compressed gob stream.
func (c *Chip) SaveState() ([]byte, error) {
	snap := snapshot{
		Version:              savestateVersion,
		VRAM:                 c.vram,
		Palette:              c.palette,
		IOAddr:               c.ioAddr,
		IORdData:             c.ioRdData,
		IOInc:                c.ioInc,
		IOAddrSel:            c.ioAddrSel,
		IODCSel:              c.ioDCSel,
		IEN:                  c.ien,
		ISR:                  c.isr,
		IRQLine:              c.irqLine,
		RegLayer:             c.regLayer,
		RegComposer:          c.regComposer,
		Mode:                 c.mode,
		ScanPosX:             c.scanPosX,
		ScanPosY:             c.scanPosY,
		FrameCount:           c.frameCount,
		AudioFIFOAlmostEmpty: c.AudioFIFOAlmostEmpty,
		WarpMode:             c.WarpMode,
	}
	for i := range c.sprites {
		snap.Sprites[i] = c.sprites[i].raw
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(&snap); err != nil {
		return nil, fmt.Errorf("video: encode savestate: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("video: flush savestate: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadState restores a chip previously serialized by SaveState, forcing a
// full shadow-buffer and layer-cache rebuild on next use.
func (c *Chip) LoadState(data []byte) error {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("video: open savestate: %w", err)
	}
	defer gz.Close()

	var snap snapshot
	if err := gob.NewDecoder(gz).Decode(&snap); err != nil {
		return fmt.Errorf("video: decode savestate: %w", err)
	}
	if snap.Version != savestateVersion {
		return fmt.Errorf("video: savestate version %d unsupported (want %d)", snap.Version, savestateVersion)
	}

	c.vram = snap.VRAM
	c.palette = snap.Palette
	for i := range c.sprites {
		c.sprites[i].raw = snap.Sprites[i]
	}

	c.ioAddr = snap.IOAddr
	c.ioRdData = snap.IORdData
	c.ioInc = snap.IOInc
	c.ioAddrSel = snap.IOAddrSel
	c.ioDCSel = snap.IODCSel

	c.ien = snap.IEN
	c.isr = snap.ISR
	c.irqLine = snap.IRQLine

	c.regLayer = snap.RegLayer
	c.regComposer = snap.RegComposer

	c.mode = snap.Mode
	c.scanPosX = snap.ScanPosX
	c.scanPosY = snap.ScanPosY
	c.frameCount = snap.FrameCount

	c.AudioFIFOAlmostEmpty = snap.AudioFIFOAlmostEmpty
	c.WarpMode = snap.WarpMode

	c.SetOutputMode(c.mode)
	c.shadowDirty = true
	c.layerCache.Purge()
	c.layers = [2]*LayerProps{}

	return nil
}
