package rom

import (
	"fmt"
	"os"
)

// MaxROMBanks bounds how many 16 KiB banks a single ROM image may occupy;
// rom_bank is a single byte selector, so no more than 256 banks can ever be
// addressed regardless of image size.
const MaxROMBanks = 256

// Image is a validated, bank-counted ROM image ready to hand to
// memory.Bus.LoadROM (or memory.New).
type Image struct {
	Bytes []uint8
	Banks int
}

// Load reads a flat ROM image from path and validates it against the
// banked ROM window: a plain byte stream, no custom header framing (the
// reset vector at the top of the image is the only metadata a real 65C02
// ROM needs), split into ROMBankSize-aligned slabs. The image loads
// directly at the bank/offset its own reset vector names.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: failed to read %q: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes validates an in-memory ROM image without touching the
// filesystem; Load calls it once it has read the file.
func LoadBytes(data []uint8) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("rom: empty image")
	}

	banks := (len(data) + BankSizeBytes - 1) / BankSizeBytes
	if banks > MaxROMBanks {
		return nil, fmt.Errorf("rom: image too large: %d bytes needs %d banks, max is %d", len(data), banks, MaxROMBanks)
	}

	padded := data
	if len(data)%BankSizeBytes != 0 {
		padded = make([]uint8, banks*BankSizeBytes)
		copy(padded, data)
	}

	return &Image{Bytes: padded, Banks: banks}, nil
}

// ResetVector reads the reset vector (0xFFFC/D) from the top of the
// image's last bank without needing a CPU/bus.
func (img *Image) ResetVector() uint16 {
	return img.vectorAt(BankSizeBytes - 4)
}

// NMIVector reads the last bank's NMI vector (0xFFFA/B).
func (img *Image) NMIVector() uint16 {
	return img.vectorAt(BankSizeBytes - 6)
}

// IRQVector reads the last bank's IRQ/BRK vector (0xFFFE/F).
func (img *Image) IRQVector() uint16 {
	return img.vectorAt(BankSizeBytes - 2)
}

func (img *Image) vectorAt(bankOffset int) uint16 {
	lastBank := (img.Banks - 1) * BankSizeBytes
	off := lastBank + bankOffset
	if off+1 >= len(img.Bytes) {
		return 0
	}
	return uint16(img.Bytes[off]) | uint16(img.Bytes[off+1])<<8
}
