package debug

import (
	"fmt"
	"os"
	"sync"
)

// MemoryReader reads a byte off the address bus (to avoid import cycles).
type MemoryReader interface {
	Read(addr uint16) uint8
}

// VideoStateReader reads raster and interrupt state off the video
// coprocessor (to avoid import cycles).
type VideoStateReader interface {
	ScanPosY() uint16
	ScanPosX() int
	VSyncPending() bool
	FrameCount() uint64
}

// SpriteReader reads sprite descriptor bytes (to avoid import cycles).
type SpriteReader interface {
	ReadSprite(index, field uint8) uint8
}

// CPUStateSnapshot captures 65C02 register state for logging.
type CPUStateSnapshot struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
	Cycles      uint64
}

// CycleLogger writes one line per logged clock cycle: CPU registers, video
// raster position and frame count, and the first six bytes of sprite 0's
// descriptor. Useful for
// diffing timing-sensitive traces against a known-good reference run.
type CycleLogger struct {
	file         *os.File
	maxCycles    uint64
	startCycle   uint64
	currentCycle uint64
	totalCycles  uint64
	enabled      bool
	mu           sync.Mutex

	bus    MemoryReader
	video  VideoStateReader
	sprite SpriteReader
}

// NewCycleLogger creates a cycle logger writing to filename. maxCycles of 0
// means unlimited; startCycle delays logging until that many cycles have
// elapsed.
func NewCycleLogger(filename string, maxCycles, startCycle uint64, bus MemoryReader, video VideoStateReader, sprite SpriteReader) (*CycleLogger, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create cycle log file: %w", err)
	}

	logger := &CycleLogger{
		file:       file,
		maxCycles:  maxCycles,
		startCycle: startCycle,
		enabled:    true,
		bus:        bus,
		video:      video,
		sprite:     sprite,
	}

	fmt.Fprintf(file, "Cycle-by-Cycle Debug Log\n========================\n\n")
	if startCycle > 0 {
		fmt.Fprintf(file, "Start cycle offset: %d\n", startCycle)
	}
	if maxCycles > 0 {
		fmt.Fprintf(file, "Max cycles to log: %d\n", maxCycles)
	}
	fmt.Fprintf(file, "\nFormat: Cycle | PC | A X Y SP | P | ScanX ScanY Frame | Sprite0[0-5]\n\n")

	return logger, nil
}

// LogCycle logs the CPU state and raster/sprite snapshot for one cycle.
func (c *CycleLogger) LogCycle(state *CPUStateSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	c.totalCycles++
	if c.totalCycles < c.startCycle {
		return
	}
	if c.maxCycles > 0 && c.currentCycle >= c.maxCycles {
		c.enabled = false
		return
	}
	c.currentCycle++

	var scanX int
	var scanY uint16
	var frame uint64
	if c.video != nil {
		scanX = c.video.ScanPosX()
		scanY = c.video.ScanPosY()
		frame = c.video.FrameCount()
	}

	var sprite0 [6]uint8
	if c.sprite != nil {
		for i := uint8(0); i < 6; i++ {
			sprite0[i] = c.sprite.ReadSprite(0, i)
		}
	}

	fmt.Fprintf(c.file, "Cycle %8d | PC:%04X | A:%02X X:%02X Y:%02X SP:%02X | P:%08b | Scan:%03d,%03d F:%06d | Spr0:%02X %02X %02X %02X %02X %02X\n",
		c.totalCycles, state.PC, state.A, state.X, state.Y, state.SP, state.P,
		scanX, scanY, frame,
		sprite0[0], sprite0[1], sprite0[2], sprite0[3], sprite0[4], sprite0[5])
}

func (c *CycleLogger) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

func (c *CycleLogger) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = !c.enabled
}

func (c *CycleLogger) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = false
	if c.file != nil {
		fmt.Fprintf(c.file, "\n\nLog complete. Total cycles logged: %d\n", c.currentCycle)
		err := c.file.Close()
		c.file = nil
		return err
	}
	return nil
}

func (c *CycleLogger) IsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled && (c.maxCycles == 0 || c.currentCycle < c.maxCycles)
}

func (c *CycleLogger) GetStatus() (enabled bool, currentCycle, totalCycles, maxCycles uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled, c.currentCycle, c.totalCycles, c.maxCycles
}
