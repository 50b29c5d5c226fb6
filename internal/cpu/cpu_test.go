package cpu

import (
	"reflect"
	"testing"
)

// flatBus is a 64KiB RAM-backed Bus used for isolated CPU behavior tests.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func (b *flatBus) loadProgram(addr uint16, bytes ...uint8) {
	copy(b.mem[addr:], bytes)
}

func (b *flatBus) setResetVector(addr uint16) {
	b.mem[VectorRESET] = uint8(addr)
	b.mem[VectorRESET+1] = uint8(addr >> 8)
}

func newTestCPU(program ...uint8) (*CPU, *flatBus) {
	bus := &flatBus{}
	bus.setResetVector(0x0200)
	bus.loadProgram(0x0200, program...)
	return New(bus), bus
}

func fnPtr(f arithFunc) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func TestResetVectorsPC(t *testing.T) {
	c, _ := newTestCPU(0xEA)
	if c.PC != 0x0200 {
		t.Fatalf("PC = %04X, want 0200", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP = %02X, want FD", c.SP)
	}
	if !c.GetFlag(FlagI) {
		t.Fatal("I flag should be set after reset")
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, _ := newTestCPU(0xA9, 0x00, 0xA9, 0x80)
	c.Step()
	if !c.GetFlag(FlagZ) || c.GetFlag(FlagN) {
		t.Fatalf("LDA #0 flags wrong: P=%02X", c.P)
	}
	c.Step()
	if c.GetFlag(FlagZ) || !c.GetFlag(FlagN) {
		t.Fatalf("LDA #$80 flags wrong: P=%02X", c.P)
	}
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	c, bus := newTestCPU(0xBD, 0xFF, 0x02) // LDA $02FF,X
	bus.mem[0x0300] = 0x42
	c.X = 1
	before := c.ClockTicks
	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A = %02X, want 42", c.A)
	}
	if c.ClockTicks-before != 5 {
		t.Fatalf("ticks = %d, want 5 (4 base + 1 page cross)", c.ClockTicks-before)
	}
}

func TestStackWrapsWithinPage1(t *testing.T) {
	c, bus := newTestCPU(0xEA)
	c.SP = 0x00
	c.push8(0x55)
	if c.SP != 0xFF {
		t.Fatalf("SP after push from 0 = %02X, want FF", c.SP)
	}
	if bus.mem[0x0100] != 0x55 {
		t.Fatal("push8 wrote to wrong address")
	}
}

func TestBRKThenRTI(t *testing.T) {
	c, bus := newTestCPU(0x00) // BRK
	bus.mem[VectorIRQ] = 0x00
	bus.mem[VectorIRQ+1] = 0x03
	bus.loadProgram(0x0300, 0x40) // RTI at the IRQ handler
	startPC := c.PC

	c.Step() // BRK
	if c.PC != 0x0300 {
		t.Fatalf("PC after BRK = %04X, want 0300", c.PC)
	}
	if !c.GetFlag(FlagI) {
		t.Fatal("I flag should be set after BRK")
	}

	c.Step() // RTI
	if c.PC != startPC+2 {
		t.Fatalf("PC after RTI = %04X, want %04X", c.PC, startPC+2)
	}
}

func TestDecimalDispatchSwapsOnSEDCLD(t *testing.T) {
	c, _ := newTestCPU(0xF8, 0xD8) // SED, CLD
	if c.adcImpl == nil || c.sbcImpl == nil {
		t.Fatal("arithmetic tables not installed at reset")
	}
	c.Step() // SED
	if fnPtr(c.adcImpl) != fnPtr(adcDecimal) {
		t.Fatal("SED did not install the decimal ADC implementation")
	}
	c.Step() // CLD
	if fnPtr(c.adcImpl) != fnPtr(adcBinary) {
		t.Fatal("CLD did not restore the binary ADC implementation")
	}
}

func TestDecimalADCNibbleCarry(t *testing.T) {
	c, _ := newTestCPU(0xF8, 0x69, 0x01) // SED; ADC #$01
	c.Step()
	c.A = 0x09
	c.SetFlag(FlagC, false)
	c.Step()
	if c.A != 0x10 {
		t.Fatalf("decimal ADC 09+01 = %02X, want 10", c.A)
	}
}

func TestWAILatchesUntilInterrupt(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0xEA) // WAI, NOP
	c.Step()
	if !c.WAI {
		t.Fatal("WAI should latch")
	}
	ticksBefore := c.ClockTicks
	op := c.Step()
	if op != 0 || c.ClockTicks != ticksBefore+1 {
		t.Fatal("CPU should idle one tick per Step while WAI is latched")
	}
	c.IRQ()
	if c.WAI {
		t.Fatal("IRQ should clear WAI")
	}
}

func TestBranchTakenSamePageAddsOneTick(t *testing.T) {
	c, _ := newTestCPU(0xA9, 0x01, 0xC9, 0x01, 0xF0, 0x02, 0xA9, 0xFF, 0xA9, 0x22)
	c.Step() // LDA #1
	c.Step() // CMP #1 -> Z set
	before := c.ClockTicks
	c.Step() // BEQ +2, taken
	if c.ClockTicks-before != 3 {
		t.Fatalf("taken branch ticks = %d, want 3", c.ClockTicks-before)
	}
	c.Step() // should land on LDA #$22, skipping LDA #$FF
	if c.A != 0x22 {
		t.Fatalf("branch target wrong, A = %02X", c.A)
	}
}

func TestBranchTakenWithPageCrossAddsTwoExtraTicks(t *testing.T) {
	// Scenario B: BEQ +0x10 at 0x00F0 with Z=1 -> target 0x0102, cost 5.
	bus := &flatBus{}
	bus.setResetVector(0x00F0)
	bus.loadProgram(0x00F0, 0xF0, 0x10) // BEQ +0x10
	c := New(bus)
	c.SetFlag(FlagZ, true)

	before := c.ClockTicks
	c.Step()
	if c.PC != 0x0102 {
		t.Fatalf("PC after branch = %04X, want 0102", c.PC)
	}
	if got := c.ClockTicks - before; got != 5 {
		t.Fatalf("taken+page-crossing branch ticks = %d, want 5", got)
	}
}

func TestBRAPageCrossAddsTwoExtraTicks(t *testing.T) {
	bus := &flatBus{}
	bus.setResetVector(0x00F0)
	bus.loadProgram(0x00F0, 0x80, 0x10) // BRA +0x10
	c := New(bus)

	before := c.ClockTicks
	c.Step()
	if c.PC != 0x0102 {
		t.Fatalf("PC after BRA = %04X, want 0102", c.PC)
	}
	if got := c.ClockTicks - before; got != 5 {
		t.Fatalf("BRA page-crossing ticks = %d, want 5", got)
	}
}

func TestBBRBranchesWhenBitClear(t *testing.T) {
	c, bus := newTestCPU(0x0F, 0x10, 0x02, 0xA9, 0x22) // BBR0 $10, +2
	bus.mem[0x0010] = 0x00
	c.Step()
	if c.PC != 0x0205 {
		t.Fatalf("PC after BBR0 taken = %04X, want 0205", c.PC)
	}
}

func TestTAYSetsFlagsFromY(t *testing.T) {
	// LDA #$00; LDX #$FF; TAY -- Y becomes 0 (Z set) even though X holds FF.
	c, _ := newTestCPU(0xA9, 0x00, 0xA2, 0xFF, 0xA8)
	c.Step()
	c.Step()
	c.Step()
	if c.Y != 0x00 || !c.GetFlag(FlagZ) {
		t.Fatalf("TAY should set Z from Y=0, got Y=%02X Z=%v", c.Y, c.GetFlag(FlagZ))
	}
	if c.X != 0xFF {
		t.Fatalf("TAY must not disturb X, got %02X", c.X)
	}
}

func TestRMBSMBToggleBits(t *testing.T) {
	c, bus := newTestCPU(0x87, 0x20, 0x07, 0x20) // SMB0 $20, RMB0 $20
	c.Step()
	if bus.mem[0x20]&0x01 == 0 {
		t.Fatal("SMB0 should set bit 0")
	}
	c.Step()
	if bus.mem[0x20]&0x01 != 0 {
		t.Fatal("RMB0 should clear bit 0")
	}
}
