package devkit

import (
	"strings"
	"testing"

	"nitro65/internal/cpu"
	"nitro65/internal/memory"
	"nitro65/internal/video"
)

func newTestService() (*Service, *cpu.CPU, *memory.Bus) {
	bus := memory.New(1, make([]uint8, memory.ROMBankSize))
	c := cpu.New(bus)
	v := video.New()
	return New(c, v, bus), c, bus
}

func TestRegisterDumpReportsLiveRegisterState(t *testing.T) {
	svc, c, _ := newTestService()
	c.A = 0x42
	c.X = 0x01
	c.SetFlag(cpu.FlagC, true)

	dump := svc.RegisterDump()
	if !strings.Contains(dump, "0x42") {
		t.Fatalf("expected A register value in dump, got: %s", dump)
	}
	if !strings.Contains(dump, "C:1") {
		t.Fatalf("expected carry flag set in dump, got: %s", dump)
	}
}

func TestRegisterDumpHandlesMissingCPU(t *testing.T) {
	svc := &Service{}
	if dump := svc.RegisterDump(); dump == "" {
		t.Fatal("expected a placeholder message, not an empty string")
	}
}

func TestMemoryDumpFormatsSixteenLines(t *testing.T) {
	svc, _, bus := newTestService()
	bus.Write(0x10, 0x41) // 'A'

	dump := svc.MemoryDump(0x00)
	lines := strings.Count(dump, "\n")
	if lines < 16 {
		t.Fatalf("expected at least 16 lines of hex dump, got %d", lines)
	}
	if !strings.Contains(dump, "41") {
		t.Fatalf("expected written byte 0x41 to appear in dump: %s", dump)
	}
}

func TestVideoRegisterDumpReflectsIENWrite(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Video.WriteIO(video.RegIEN, 0x01)

	dump := svc.VideoRegisterDump()
	if !strings.Contains(dump, "IEN:  0x01") {
		t.Fatalf("expected IEN=0x01 in dump, got: %s", dump)
	}
}

func TestPaletteSwatchReadsDefaultPalette(t *testing.T) {
	svc, _, _ := newTestService()
	// Entry 0 of the default palette is black; just assert it's readable
	// without panicking and stays in the 12-bit range.
	if got := svc.PaletteSwatch(0); got > 0xFFF {
		t.Fatalf("PaletteSwatch(0) = %#x, out of 12-bit range", got)
	}
}

func TestSpritesReturnsAllDescriptorRows(t *testing.T) {
	svc, _, _ := newTestService()
	rows := svc.Sprites()
	if len(rows) != 128 {
		t.Fatalf("len(Sprites()) = %d, want 128", len(rows))
	}
	for _, r := range rows {
		if r.Enabled {
			t.Fatalf("sprite %d unexpectedly enabled on a freshly reset chip", r.Index)
		}
	}
}
