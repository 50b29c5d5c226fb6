// Command devkit launches the Fyne-based register/VRAM/sprite inspector
// against a ROM image, reading the 65C02/video core through the same
// public entry points any other collaborator uses.
package main

import (
	"flag"
	"fmt"
	"os"

	"nitro65/internal/cpu"
	"nitro65/internal/devkit"
	"nitro65/internal/memory"
	"nitro65/internal/rom"
	"nitro65/internal/video"
)

func main() {
	romPath := flag.String("rom", "", "Path to ROM file to inspect")
	flag.Parse()

	var bus *memory.Bus
	if *romPath != "" {
		img, err := rom.Load(*romPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading ROM: %v\n", err)
			os.Exit(1)
		}
		bus = memory.New(4, img.Bytes)
	} else {
		bus = memory.New(4, nil)
	}

	c := cpu.New(bus)
	c.Reset()
	vid := video.New()

	svc := devkit.New(c, vid, bus)
	devkit.NewWindow(svc).Run()
}
