package rom

import (
	"fmt"
	"os"
)

// BankSizeBytes is the size of one ROM bank as banked into the CPU's address
// space at 0xC000-0xFFFF, matching internal/memory.ROMBankSize.
const BankSizeBytes = 0x4000

// ROMBuilder assembles a flat, single-bank ROM image: a plain byte stream
// with no header, the shape a real mask-programmed ROM chip is burned with.
// The reset/NMI/IRQ vectors live at the top of the bank exactly as the CPU
// expects them, so BuildROM pads short programs out to BankSizeBytes rather
// than truncating the image at the vector table.
type ROMBuilder struct {
	code []uint8
}

// NewROMBuilder creates an empty single-bank ROM builder.
func NewROMBuilder() *ROMBuilder {
	return &ROMBuilder{code: make([]uint8, 0, BankSizeBytes)}
}

// Emit appends raw bytes (an assembled instruction, an operand, a data
// table) to the image.
func (b *ROMBuilder) Emit(bytes ...uint8) {
	b.code = append(b.code, bytes...)
}

// PC returns the bank-local address the next emitted byte will land at,
// assuming this bank is mapped at 0xC000.
func (b *ROMBuilder) PC() uint16 {
	return 0xC000 + uint16(len(b.code))
}

// SetVectors writes the reset/NMI/IRQ vector table at the top three words
// of the bank (0xFFFA-0xFFFF), padding the code region first if needed.
func (b *ROMBuilder) SetVectors(nmi, reset, irq uint16) error {
	if len(b.code) > BankSizeBytes-6 {
		return fmt.Errorf("rom: code (%d bytes) leaves no room for the vector table", len(b.code))
	}
	padded := make([]uint8, BankSizeBytes)
	copy(padded, b.code)
	putVector(padded, 0xFFFA, nmi)
	putVector(padded, 0xFFFC, reset)
	putVector(padded, 0xFFFE, irq)
	b.code = padded
	return nil
}

func putVector(bank []uint8, bankOffset uint16, addr uint16) {
	off := bankOffset - 0xC000
	bank[off] = uint8(addr)
	bank[off+1] = uint8(addr >> 8)
}

// BuildROMBytes returns the padded bank image in memory.
func (b *ROMBuilder) BuildROMBytes() ([]byte, error) {
	if len(b.code) > BankSizeBytes {
		return nil, fmt.Errorf("rom: code overflows bank: %d > %d bytes", len(b.code), BankSizeBytes)
	}
	out := make([]byte, BankSizeBytes)
	copy(out, b.code)
	return out, nil
}

// BuildROM writes the padded bank image to outputPath.
func (b *ROMBuilder) BuildROM(outputPath string) error {
	data, err := b.BuildROMBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}

// CalculateBranchOffset computes the signed 8-bit operand for a 65C02
// relative branch (BRA/BEQ/.../BBRx/BBSx), relative to branchPC, the
// address of the byte immediately following the one-byte operand.
func CalculateBranchOffset(branchPC, targetPC uint16) int8 {
	offset := int32(targetPC) - int32(branchPC)
	if offset < -128 || offset > 127 {
		panic(fmt.Sprintf("branch offset out of range: %d", offset))
	}
	return int8(offset)
}
