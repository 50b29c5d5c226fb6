package rom

import "testing"

func TestBankedROMBuilderBuildROMBytesPaddedBanks(t *testing.T) {
	b := NewBankedROMBuilder()
	b.Emit(1, 0x11, 0x11)
	b.Emit(3, 0x33, 0x33)

	data, err := b.BuildROMBytes()
	if err != nil {
		t.Fatalf("BuildROMBytes failed: %v", err)
	}

	wantSize := 3 * BankSizeBytes // banks 1..3 inclusive, bank 2 padded
	if len(data) != wantSize {
		t.Fatalf("total image size = %d, want %d", len(data), wantSize)
	}

	if data[0] != 0x11 || data[1] != 0x11 {
		t.Fatalf("bank1 first bytes = %02X %02X, want 11 11", data[0], data[1])
	}
	bank2Base := BankSizeBytes
	if data[bank2Base] != 0 || data[bank2Base+1] != 0 {
		t.Fatalf("bank2 should be zero-padded, got %02X %02X", data[bank2Base], data[bank2Base+1])
	}
	bank3Base := 2 * BankSizeBytes
	if data[bank3Base] != 0x33 || data[bank3Base+1] != 0x33 {
		t.Fatalf("bank3 first bytes = %02X %02X, want 33 33", data[bank3Base], data[bank3Base+1])
	}
}

func TestBankedROMBuilderResolveRelativeRelocationSameBank(t *testing.T) {
	b := NewBankedROMBuilder()
	const bank = 1

	branchPC := b.PC(bank) + 1 // address immediately after the one-byte operand
	byteIndex := b.GetCodeLength(bank)
	b.Emit(bank, 0x00) // placeholder branch offset

	b.Emit(bank, 0xEA) // one NOP between branch and target
	b.MarkLabel(bank, "target")
	targetPC := b.PC(bank)
	b.Emit(bank, 0xEA)

	b.AddBranch8Relocation(bank, byteIndex, branchPC, "target")
	if err := b.ResolveRelocations(); err != nil {
		t.Fatalf("ResolveRelocations failed: %v", err)
	}

	got := b.bank(bank).code[byteIndex]
	want := uint8(CalculateBranchOffset(branchPC, targetPC))
	if got != want {
		t.Fatalf("patched relative offset = %#02x, want %#02x", got, want)
	}
}

func TestBankedROMBuilderUnknownLabelFails(t *testing.T) {
	b := NewBankedROMBuilder()

	branchPC := b.PC(1) + 1
	byteIndex := b.GetCodeLength(1)
	b.Emit(1, 0x00)
	b.AddBranch8Relocation(1, byteIndex, branchPC, "nonexistent")

	if err := b.ResolveRelocations(); err == nil {
		t.Fatalf("expected error resolving an unknown label")
	}
}
