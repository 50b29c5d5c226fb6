package devkit

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RegisterPanel builds a scrollable, read-only register dump the caller
// refreshes by invoking the returned update function, the same
// container/update-func split the teacher's panels.RegisterViewer uses.
func RegisterPanel(svc *Service) (*fyne.Container, func()) {
	text := widget.NewMultiLineEntry()
	text.Wrapping = fyne.TextWrapOff
	text.Disable()
	scroll := container.NewScroll(text)
	scroll.SetMinSize(fyne.NewSize(320, 280))

	update := func() { text.SetText(svc.RegisterDump()) }
	update()

	return container.NewVBox(widget.NewLabel("CPU Registers"), scroll), update
}

// VideoRegisterPanel mirrors RegisterPanel for the video coprocessor's
// composer/raster/IRQ registers.
func VideoRegisterPanel(svc *Service) (*fyne.Container, func()) {
	text := widget.NewMultiLineEntry()
	text.Wrapping = fyne.TextWrapOff
	text.Disable()
	scroll := container.NewScroll(text)
	scroll.SetMinSize(fyne.NewSize(320, 160))

	update := func() { text.SetText(svc.VideoRegisterDump()) }
	update()

	return container.NewVBox(widget.NewLabel("Video Registers"), scroll), update
}

// MemoryPanel builds a hex-dump viewer with an address entry, grounded on
// the teacher's panels.MemoryViewer bank/offset entry pair (the dump reads
// through the bus, so the banked RAM/ROM windows show whichever bank is
// currently selected; just one address field).
func MemoryPanel(svc *Service) (*fyne.Container, func()) {
	addrEntry := widget.NewEntry()
	addrEntry.SetText("0x0000")

	dump := widget.NewLabel("")
	dump.Wrapping = fyne.TextWrapOff
	scroll := container.NewScroll(dump)
	scroll.SetMinSize(fyne.NewSize(420, 320))

	update := func() {
		var addr uint16
		fmt.Sscanf(addrEntry.Text, "0x%X", &addr)
		dump.SetText(svc.MemoryDump(addr))
	}
	addrEntry.OnChanged = func(string) { update() }
	update()

	controls := container.NewHBox(widget.NewLabel("Address:"), addrEntry)
	return container.NewVBox(widget.NewLabel("Memory Viewer"), controls, scroll), update
}

// PalettePanel renders all 256 palette entries as an 16x16 swatch grid,
// grounded on the teacher's TileViewer palette-strip rendering but scoped
// to the full palette rather than one 16-color bank.
func PalettePanel(svc *Service) (*fyne.Container, func()) {
	const cell = 16
	raster := canvas.NewRaster(func(w, h int) image.Image {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < 256; i++ {
			row, col := i/16, i%16
			rgb444 := svc.PaletteSwatch(uint8(i))
			r := uint8((rgb444>>8)&0xF) * 17
			g := uint8((rgb444>>4)&0xF) * 17
			b := uint8(rgb444&0xF) * 17
			swatch := color.RGBA{r, g, b, 255}
			for y := 0; y < cell; y++ {
				for x := 0; x < cell; x++ {
					img.Set(col*cell+x, row*cell+y, swatch)
				}
			}
		}
		return img
	})
	raster.SetMinSize(fyne.NewSize(16*cell, 16*cell))

	update := func() { raster.Refresh() }
	return container.NewVBox(widget.NewLabel("Palette"), raster), update
}

// SpriteTablePanel lists the 128 sprite descriptors' position/depth state
// as text, grounded on the teacher's TileViewer tile-selector idiom but
// scoped to the attribute table rather than raw tile pixels.
func SpriteTablePanel(svc *Service) (*fyne.Container, func()) {
	text := widget.NewMultiLineEntry()
	text.Wrapping = fyne.TextWrapOff
	text.Disable()
	scroll := container.NewScroll(text)
	scroll.SetMinSize(fyne.NewSize(360, 320))

	update := func() {
		var dump string
		for _, r := range svc.Sprites() {
			if !r.Enabled {
				continue
			}
			dump += fmt.Sprintf("#%3d  x=%4d y=%4d addr=%#06x z=%d\n", r.Index, r.X, r.Y, r.Addr, r.ZDepth)
		}
		if dump == "" {
			dump = "(no enabled sprites)\n"
		}
		text.SetText(dump)
	}
	update()

	return container.NewVBox(widget.NewLabel("Sprites"), scroll), update
}
