// Command emulator is the flag-based launcher wiring the CPU core, video
// coprocessor, memory bus, and PS/2 input shims into a running machine and
// presenting it through internal/hostvideo.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nitro65/internal/clock"
	"nitro65/internal/cpu"
	"nitro65/internal/debug"
	"nitro65/internal/hostvideo"
	"nitro65/internal/input"
	"nitro65/internal/memory"
	"nitro65/internal/rom"
	"nitro65/internal/video"
)

const (
	ioBase     = memory.IOBase
	videoSlot0 = ioBase + 0x20
	videoSlot1 = ioBase + 0x40
	kbdSlot0   = ioBase + 0x60 // VIA1: PS/2 keyboard clock/data on real hardware
	kbdSlot1   = ioBase + 0x70
	mouseSlot0 = ioBase + 0xA0
	mouseSlot1 = ioBase + 0xB0
)

func main() {
	romPath := flag.String("rom", "", "Path to ROM file")
	unlimited := flag.Bool("unlimited", false, "Report the frame limit as off at startup (presentation still waits for vsync)")
	scale := flag.Int("scale", 2, "Display scale (1-6)")
	enableLogging := flag.Bool("log", false, "Enable logging (disabled by default)")
	warp := flag.Bool("warp", false, "Present no frames (and record none) so emulation runs unpaced; the video chip still renders every line")
	ntsc := flag.Bool("ntsc", false, "Start in NTSC output mode instead of VGA")
	gifPath := flag.String("gif", "", "Record output to an animated GIF at this path")
	breakAt := flag.String("break", "", "Pause in a register-dump prompt when PC reaches this hex address")
	traceFile := flag.String("tracefile", "", "Write a cycle-by-cycle debug trace to this path")
	traceMax := flag.Uint64("trace-max-cycles", 0, "Stop the cycle trace after this many cycles (0 = unlimited)")
	flag.Parse()

	if *romPath == "" {
		fmt.Println("Usage: emulator -rom <path-to-rom>")
		fmt.Println("  -rom <path>      Path to ROM file")
		fmt.Println("  -unlimited       Report frame limit as off (still vsync-paced)")
		fmt.Println("  -scale <1-6>     Display scale (default: 2)")
		fmt.Println("  -log             Enable logging (disabled by default)")
		fmt.Println("  -warp            Present no frames; rendering still runs")
		fmt.Println("  -ntsc            Start in NTSC output mode")
		fmt.Println("  -gif <path>      Record an animated GIF")
		fmt.Println("  -break <hex>     Pause in a register-dump prompt at this PC")
		fmt.Println("  -tracefile <path> Write a cycle-by-cycle debug trace")
		os.Exit(1)
	}
	if *scale < 1 || *scale > 6 {
		fmt.Fprintf(os.Stderr, "Error: scale must be between 1 and 6\n")
		os.Exit(1)
	}

	img, err := rom.Load(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ROM: %v\n", err)
		os.Exit(1)
	}

	var logger *debug.Logger
	if *enableLogging {
		logger = debug.NewLogger(10000)
		logger.SetComponentEnabled(debug.ComponentCPU, true)
		logger.SetComponentEnabled(debug.ComponentMemory, true)
		logger.SetComponentEnabled(debug.ComponentInput, true)
		logger.SetComponentEnabled(debug.ComponentSystem, true)
	}

	bus := memory.New(4, img.Bytes)

	vid := video.New()
	if *ntsc {
		vid.SetOutputMode(video.OutputNTSC)
	}
	bus.AttachIO(videoSlot0, videoSlot1, vid)

	kbd := input.NewKeyboard()
	bus.AttachIO(kbdSlot0, kbdSlot1, kbd)

	mouse := input.NewMouse()
	bus.AttachIO(mouseSlot0, mouseSlot1, mouse)

	c := cpu.New(bus)
	if logger != nil {
		c.Log = cpu.NewLoggerAdapter(logger, cpu.LogInstructions)
	}
	c.Reset()

	sched := clock.NewScheduler(c, vid, 1)

	var dbg *debug.Debugger
	if *breakAt != "" {
		addr, perr := strconv.ParseUint(strings.TrimPrefix(*breakAt, "0x"), 16, 16)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: -break wants a hex address, got %q\n", *breakAt)
			os.Exit(1)
		}
		dbg = debug.NewDebugger()
		dbg.SetBreakpoint(uint16(addr))
	}

	presenter, err := hostvideo.NewPresenter("nitro65", *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating presenter: %v\n", err)
		os.Exit(1)
	}
	defer presenter.Close()

	var recorder *hostvideo.GIFRecorder
	if *gifPath != "" {
		recorder = hostvideo.NewGIFRecorder(*gifPath)
		defer recorder.Close()
	}

	var cycleLog *debug.CycleLogger
	if *traceFile != "" {
		cl, err := debug.NewCycleLogger(*traceFile, *traceMax, 0, bus, vid, vid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening trace file: %v\n", err)
			os.Exit(1)
		}
		cycleLog = cl
		defer cycleLog.Close()
	}

	fmt.Println("nitro65")
	fmt.Println("=======")
	fmt.Printf("ROM loaded: %s (%d bank(s))\n", *romPath, img.Banks)
	fmt.Printf("Frame limit: %v\n", !*unlimited)
	fmt.Printf("Display scale: %dx\n", *scale)

	for {
		if presenter.PumpEvents(kbd, mouse) {
			return
		}

		newFrame := sched.RunInstruction()

		if cycleLog != nil {
			cycleLog.LogCycle(&debug.CPUStateSnapshot{
				A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P, Cycles: c.ClockTicks,
			})
		}

		if dbg != nil && dbg.ShouldBreak(c.PC) {
			// While stepping, ShouldBreak reports every stepped instruction;
			// prompt only on a breakpoint or once the step count runs out.
			if bp, ok := dbg.GetBreakpoint(c.PC); (ok && bp.Enabled) || dbg.IsPaused() {
				promptBreak(dbg, c)
			}
		}

		if !newFrame {
			continue
		}

		if *warp {
			continue
		}
		if err := presenter.Present(vid.Framebuffer[:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error presenting frame: %v\n", err)
			return
		}
		if recorder != nil && recorder.Enabled() {
			recorder.AddFrame(vid.Framebuffer[:], 100/60)
		}
	}
}

// promptBreak stops the run loop at a hit breakpoint and drops into a tiny
// stdin REPL: "c" continues, "s N" single-steps N instructions, anything
// else prints the register snapshot again.
func promptBreak(dbg *debug.Debugger, c *cpu.CPU) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("break at PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%08b\n", c.PC, c.A, c.X, c.Y, c.SP, c.P)
		fmt.Print("(c)ontinue, (s N) step, (q)uit > ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c", "continue":
			dbg.Resume()
			return
		case "s", "step":
			n := 1
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			dbg.Step(n)
			return
		case "q", "quit":
			os.Exit(0)
		}
	}
}
