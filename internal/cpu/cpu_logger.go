package cpu

import (
	"fmt"

	"nitro65/internal/debug"
)

// LogLevel represents granular CPU logging levels, coarsest to finest.
type LogLevel int

const (
	LogNone         LogLevel = iota // No CPU logging
	LogBranches                     // Branches, jumps and calls
	LogInstructions                 // Every instruction
	LogTrace                        // Every instruction plus full register dump
)

// LoggerAdapter adapts a debug.Logger to the CPU's Logger interface,
// translating each retired instruction into a structured log entry.
type LoggerAdapter struct {
	logger    *debug.Logger
	level     LogLevel
	enabled   bool
	lastRegs  regSnapshot
}

type regSnapshot struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
}

// NewLoggerAdapter creates a CPU logger adapter wrapping logger at the given
// level.
func NewLoggerAdapter(logger *debug.Logger, level LogLevel) *LoggerAdapter {
	return &LoggerAdapter{logger: logger, level: level, enabled: true}
}

func (a *LoggerAdapter) SetLevel(level LogLevel) { a.level = level }
func (a *LoggerAdapter) SetEnabled(enabled bool)  { a.enabled = enabled }

func isBranchOrJump(name string) bool {
	switch name {
	case "JMP", "JSR", "RTS", "RTI", "BRK", "BRA",
		"BPL", "BMI", "BVC", "BVS", "BCC", "BCS", "BNE", "BEQ",
		"BBR", "BBS":
		return true
	default:
		return false
	}
}

// LogInstruction implements the cpu.Logger interface.
func (a *LoggerAdapter) LogInstruction(pc uint16, opcode uint8, c *CPU) {
	if !a.enabled || a.logger == nil || a.level == LogNone {
		return
	}

	name := c.opcodes[opcode].name
	if a.level == LogBranches && !isBranchOrJump(name) {
		return
	}

	level := debug.LogLevelDebug
	if a.level == LogTrace {
		level = debug.LogLevelTrace
	}

	data := map[string]interface{}{
		"pc":    fmt.Sprintf("%04X", pc),
		"a":     fmt.Sprintf("%02X", c.A),
		"x":     fmt.Sprintf("%02X", c.X),
		"y":     fmt.Sprintf("%02X", c.Y),
		"sp":    fmt.Sprintf("%02X", c.SP),
		"p":     fmt.Sprintf("%08b", c.P),
		"cycle": c.ClockTicks,
	}

	now := regSnapshot{A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P}
	if now != a.lastRegs {
		data["registers_changed"] = true
	}
	a.lastRegs = now

	a.logger.LogCPU(level, fmt.Sprintf("%s @ %04X", name, pc), data)
}
