package clock

import (
	"testing"

	"nitro65/internal/cpu"
)

type flatBus [0x10000]uint8

func (b *flatBus) Read(addr uint16) uint8       { return b[addr] }
func (b *flatBus) Write(addr uint16, v uint8)   { b[addr] = v }

type fakeVideo struct {
	ticks     uint64
	frameAt   uint64
	irq       bool
}

func (f *fakeVideo) Step() bool {
	f.ticks++
	return f.ticks == f.frameAt
}

func (f *fakeVideo) GetIRQOut() bool { return f.irq }

func TestRunInstructionAdvancesVideoByCPUTicks(t *testing.T) {
	bus := &flatBus{}
	bus[0xFFFC] = 0x00
	bus[0xFFFD] = 0x80
	bus[0x8000] = 0xEA // NOP, 2 cycles

	c := cpu.New(bus)
	v := &fakeVideo{frameAt: 100}
	s := NewScheduler(c, v, 1)

	s.RunInstruction()
	if v.ticks != 2 {
		t.Fatalf("video ticks = %d, want 2 (NOP cycle count)", v.ticks)
	}
}

func TestRunFrameStopsOnNewFrame(t *testing.T) {
	bus := &flatBus{}
	bus[0xFFFC] = 0x00
	bus[0xFFFD] = 0x80
	for i := uint16(0); i < 16; i++ {
		bus[0x8000+i] = 0xEA
	}

	c := cpu.New(bus)
	v := &fakeVideo{frameAt: 6}
	s := NewScheduler(c, v, 1)

	instructions := s.RunFrame()
	if instructions == 0 {
		t.Fatal("expected at least one instruction retired")
	}
	if s.FramesRendered != 1 {
		t.Fatalf("FramesRendered = %d, want 1", s.FramesRendered)
	}
}

func TestRunInstructionServicesIRQWhenLineAsserted(t *testing.T) {
	bus := &flatBus{}
	bus[0xFFFC] = 0x00
	bus[0xFFFD] = 0x80
	bus[0xFFFE] = 0x00 // IRQ vector low
	bus[0xFFFF] = 0x90 // IRQ vector high
	bus[0x8000] = 0xEA

	c := cpu.New(bus)
	c.SetFlag(cpu.FlagI, false)
	v := &fakeVideo{frameAt: 1000, irq: true}
	s := NewScheduler(c, v, 1)

	s.RunInstruction()
	if c.PC != 0x9000 {
		t.Fatalf("PC = %#x, want 0x9000 after serviced IRQ", c.PC)
	}
}
