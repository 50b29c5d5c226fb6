package rom

import (
	"fmt"
	"sort"
)

// BankedROMBuilder is a bank-aware byte-level ROM image builder: one
// independent 16 KiB code stream per bank, addressed as the CPU sees it
// (0xC000-0xFFFF once banked in), with label/relocation support for
// same-bank relative branches.
type BankedROMBuilder struct {
	banks map[uint8]*bankProgram
}

type bankProgram struct {
	code   []uint8
	labels map[string]uint16 // bank-local addresses (0xC000+)
	relocs []bankRelocation
}

// RelocKind identifies the shape of a patched operand.
type RelocKind uint8

const (
	// RelocBranch8 patches a signed 8-bit relative branch operand
	// (BRA/BEQ/BNE/... or a BBRx/BBSx operand byte).
	RelocBranch8 RelocKind = iota
)

type bankRelocation struct {
	byteIndex   int
	branchPC    uint16 // address of the byte immediately after the operand
	targetBank  uint8
	targetLabel string
	kind        RelocKind
}

// NewBankedROMBuilder creates an empty multi-bank builder.
func NewBankedROMBuilder() *BankedROMBuilder {
	return &BankedROMBuilder{banks: make(map[uint8]*bankProgram)}
}

func (b *BankedROMBuilder) bank(bank uint8) *bankProgram {
	p := b.banks[bank]
	if p == nil {
		p = &bankProgram{code: make([]uint8, 0, BankSizeBytes), labels: make(map[string]uint16)}
		b.banks[bank] = p
	}
	return p
}

// Emit appends bytes to the named bank's code stream.
func (b *BankedROMBuilder) Emit(bank uint8, bytes ...uint8) {
	p := b.bank(bank)
	if len(p.code)+len(bytes) > BankSizeBytes {
		panic(fmt.Sprintf("bank %d code overflow: exceeds %d bytes", bank, BankSizeBytes))
	}
	p.code = append(p.code, bytes...)
}

// GetCodeLength returns the number of bytes emitted into bank so far.
func (b *BankedROMBuilder) GetCodeLength(bank uint8) int {
	return len(b.bank(bank).code)
}

// PC returns the bank-local address the next emitted byte will land at.
func (b *BankedROMBuilder) PC(bank uint8) uint16 {
	return 0xC000 + uint16(b.GetCodeLength(bank))
}

// MarkLabel records the current PC of bank under name.
func (b *BankedROMBuilder) MarkLabel(bank uint8, name string) {
	b.bank(bank).labels[name] = b.PC(bank)
}

// AddBranch8Relocation registers a same-bank relative-branch fixup for the
// placeholder byte at byteIndex. branchPC is the address immediately after
// the one-byte operand, matching 65C02 branch-offset addressing.
func (b *BankedROMBuilder) AddBranch8Relocation(bank uint8, byteIndex int, branchPC uint16, targetLabel string) {
	p := b.bank(bank)
	p.relocs = append(p.relocs, bankRelocation{
		byteIndex:   byteIndex,
		branchPC:    branchPC,
		targetBank:  bank,
		targetLabel: targetLabel,
		kind:        RelocBranch8,
	})
}

// ResolveRelocations patches every registered relocation in place.
func (b *BankedROMBuilder) ResolveRelocations() error {
	for srcBank, p := range b.banks {
		for _, r := range p.relocs {
			if r.targetBank != srcBank {
				return fmt.Errorf("cross-bank relative relocation not supported: bank %d -> bank %d label %q",
					srcBank, r.targetBank, r.targetLabel)
			}
			targetPC, ok := b.bank(r.targetBank).labels[r.targetLabel]
			if !ok {
				return fmt.Errorf("unknown label %q in bank %d", r.targetLabel, r.targetBank)
			}
			offset := CalculateBranchOffset(r.branchPC, targetPC)
			p.code[r.byteIndex] = uint8(offset)
		}
	}
	return nil
}

// BuildROMBytes concatenates every bank from 1 up to the highest used bank
// number into one flat image, zero-padding any gap banks and any
// partially-filled bank out to BankSizeBytes. No header is written: the
// image is exactly what a ROM chip would be burned with.
func (b *BankedROMBuilder) BuildROMBytes() ([]byte, error) {
	if len(b.banks) == 0 {
		return nil, fmt.Errorf("no banked ROM code added")
	}
	if err := b.ResolveRelocations(); err != nil {
		return nil, err
	}

	used := make([]int, 0, len(b.banks))
	for bank := range b.banks {
		used = append(used, int(bank))
	}
	sort.Ints(used)
	highest := uint8(used[len(used)-1])

	out := make([]byte, int(highest)*BankSizeBytes)
	for bank, p := range b.banks {
		if len(p.code) > BankSizeBytes {
			return nil, fmt.Errorf("bank %d overflow: %d bytes > %d", bank, len(p.code), BankSizeBytes)
		}
		base := int(bank-1) * BankSizeBytes
		copy(out[base:base+len(p.code)], p.code)
	}
	return out, nil
}
