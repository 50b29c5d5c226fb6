// Package clock drives the CPU and video coprocessor in lockstep: the CPU
// retires one instruction, the video chip's raster state machine advances
// by the matching number of pixel-clock ticks, and the coprocessor's
// interrupt line is polled once per instruction.
package clock

import "nitro65/internal/cpu"

// VideoStepper is the subset of the video coprocessor the scheduler drives.
// Defined here rather than imported directly so the clock package can be
// unit tested against a fake without pulling in the full video chip.
type VideoStepper interface {
	Step() bool
	GetIRQOut() bool
}

// Scheduler ties a CPU to a video coprocessor, converting CPU clock ticks
// into the matching count of video Step calls and feeding the coprocessor's
// interrupt line back into the CPU between instructions.
type Scheduler struct {
	CPU   *cpu.CPU
	Video VideoStepper

	// VideoTicksPerCPUTick is how many Step calls the video chip gets per
	// CPU clock tick. On real hardware the video coprocessor runs off its
	// own higher-frequency pixel clock; here the ratio is supplied by the
	// caller instead of derived, since it depends on which of the two
	// chips' Hz figures the host wants treated as ground truth.
	VideoTicksPerCPUTick uint64

	FramesRendered uint64
}

// NewScheduler wires a CPU and video coprocessor together. videoTicksPerCPUTick
// must be at least 1.
func NewScheduler(c *cpu.CPU, v VideoStepper, videoTicksPerCPUTick uint64) *Scheduler {
	if videoTicksPerCPUTick == 0 {
		videoTicksPerCPUTick = 1
	}
	return &Scheduler{CPU: c, Video: v, VideoTicksPerCPUTick: videoTicksPerCPUTick}
}

// RunInstruction retires exactly one CPU instruction, drives the video chip
// forward by the matching number of ticks, and services a pending IRQ if
// the coprocessor is asserting its interrupt line and the CPU's I flag is
// clear. It reports whether a new video frame began during this step.
func (s *Scheduler) RunInstruction() (newFrame bool) {
	before := s.CPU.ClockTicks
	s.CPU.Step()
	ticks := s.CPU.ClockTicks - before

	for i := uint64(0); i < ticks*s.VideoTicksPerCPUTick; i++ {
		if s.Video.Step() {
			newFrame = true
			s.FramesRendered++
		}
	}

	if s.Video.GetIRQOut() && !s.CPU.GetFlag(cpu.FlagI) {
		s.CPU.IRQ()
	}
	return newFrame
}

// RunFrame retires instructions until a new video frame begins, yielding
// control back to the caller (the host render/input loop) exactly once per
// frame. It returns the number of instructions retired.
func (s *Scheduler) RunFrame() uint64 {
	var instructions uint64
	for {
		instructions++
		if s.RunInstruction() {
			return instructions
		}
	}
}
