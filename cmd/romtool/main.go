// Command romtool inspects ROM images: header-less 65C02 images where the
// only metadata is the bank-aligned reset/NMI/IRQ vector trio at the top
// of the last bank. Uses kong instead of a flag-based CLI since this is a
// secondary developer tool, separate from the primary emulator launcher.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"nitro65/internal/rom"
)

type infoCmd struct {
	ROM string `arg:"" help:"Path to the ROM image."`
}

func (c *infoCmd) Run() error {
	img, err := rom.Load(c.ROM)
	if err != nil {
		return err
	}
	fmt.Printf("banks:       %d (%d bytes)\n", img.Banks, len(img.Bytes))
	fmt.Printf("reset vector: %#06x\n", img.ResetVector())
	fmt.Printf("nmi vector:   %#06x\n", img.NMIVector())
	fmt.Printf("irq vector:   %#06x\n", img.IRQVector())
	return nil
}

type dumpCmd struct {
	ROM    string `arg:"" help:"Path to the ROM image."`
	Offset int    `help:"Byte offset to start the hex dump at." default:"0"`
	Length int    `help:"Number of bytes to dump." default:"256"`
}

func (c *dumpCmd) Run() error {
	img, err := rom.Load(c.ROM)
	if err != nil {
		return err
	}
	end := c.Offset + c.Length
	if end > len(img.Bytes) {
		end = len(img.Bytes)
	}
	for off := c.Offset; off < end; off += 16 {
		lineEnd := off + 16
		if lineEnd > end {
			lineEnd = end
		}
		fmt.Printf("%06x  ", off)
		for _, b := range img.Bytes[off:lineEnd] {
			fmt.Printf("%02x ", b)
		}
		fmt.Println()
	}
	return nil
}

var cli struct {
	Info infoCmd `cmd:"" help:"Print ROM size and reset/NMI/IRQ vectors."`
	Dump dumpCmd `cmd:"" help:"Hex-dump a range of ROM bytes."`
}

func main() {
	ctx := kong.Parse(&cli, kong.Name("romtool"), kong.Description("Inspect nitro65 ROM images."))
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "romtool:", err)
		os.Exit(1)
	}
}
