package devkit

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const panelRefreshHz = 10

// Window is the Fyne-based inspector: register/flags view, a memory hex
// dump, a palette swatch grid, and a sprite table, composed the way the
// teacher's FyneUI stacks panels.RegisterViewer/MemoryViewer/TileViewer
// side by side rather than as one monolithic widget.
type Window struct {
	app    fyne.App
	window fyne.Window
	svc    *Service

	updaters []func()
	stop     chan struct{}
}

// NewWindow builds the inspector window against svc. Call Run to show it
// and block until closed.
func NewWindow(svc *Service) *Window {
	fyneApp := app.NewWithID("dev.nitro65.devkit")
	window := fyneApp.NewWindow("nitro65 devkit")

	registers, updateRegisters := RegisterPanel(svc)
	videoRegs, updateVideoRegs := VideoRegisterPanel(svc)
	memory, updateMemory := MemoryPanel(svc)
	palette, updatePalette := PalettePanel(svc)
	sprites, updateSprites := SpriteTablePanel(svc)

	tabs := container.NewAppTabs(
		container.NewTabItem("Registers", container.NewVBox(registers, videoRegs)),
		container.NewTabItem("Memory", memory),
		container.NewTabItem("Palette", palette),
		container.NewTabItem("Sprites", sprites),
	)

	status := widget.NewLabel(fmt.Sprintf("frame %d", svc.Video.FrameCount()))
	window.SetContent(container.NewBorder(nil, status, nil, nil, tabs))
	window.Resize(fyne.NewSize(640, 480))

	w := &Window{
		app:    fyneApp,
		window: window,
		svc:    svc,
		updaters: []func(){
			updateRegisters, updateVideoRegs, updateMemory, updatePalette, updateSprites,
			func() { status.SetText(fmt.Sprintf("frame %d", svc.Video.FrameCount())) },
		},
		stop: make(chan struct{}),
	}
	return w
}

// Run starts the panel-refresh ticker and shows the window, blocking until
// it is closed.
func (w *Window) Run() {
	ticker := time.NewTicker(time.Second / panelRefreshHz)
	go func() {
		for {
			select {
			case <-ticker.C:
				for _, u := range w.updaters {
					u()
				}
			case <-w.stop:
				ticker.Stop()
				return
			}
		}
	}()
	w.window.ShowAndRun()
	close(w.stop)
}
