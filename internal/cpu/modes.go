package cpu

// modeFunc resolves an instruction's effective address, fetching any operand
// bytes it needs and advancing PC accordingly. penalty is the opcode's
// "penalty bit": when true and the mode's base/index computation crosses an
// 8-bit page, one extra tick is charged.
type modeFunc func(c *CPU, penalty bool) uint16

func crossesPage(a, b uint16) bool {
	return (a^b)&0xFF00 != 0
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | (hi << 8)
}

// read16 reads a little-endian word without any zero-page wraparound,
// matching the 65C02's corrected JMP (ind) / JMP (ind,X) behavior.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return lo | (hi << 8)
}

// read16zp reads a little-endian word from zero page, wrapping the high
// byte fetch within page 0 (standard 6502/65C02 zero-page-indirect wrap).
func (c *CPU) read16zp(zpAddr uint8) uint16 {
	lo := uint16(c.read(uint16(zpAddr)))
	hi := uint16(c.read(uint16(zpAddr + 1)))
	return lo | (hi << 8)
}

func modeImp(c *CPU, penalty bool) uint16 { return 0 }
func modeAcc(c *CPU, penalty bool) uint16 { return 0 }

func modeImm(c *CPU, penalty bool) uint16 {
	addr := c.PC
	c.PC++
	return addr
}

func modeZP(c *CPU, penalty bool) uint16 {
	return uint16(c.fetch8())
}

func modeZPX(c *CPU, penalty bool) uint16 {
	return uint16(c.fetch8() + c.X)
}

func modeZPY(c *CPU, penalty bool) uint16 {
	return uint16(c.fetch8() + c.Y)
}

func modeAbs(c *CPU, penalty bool) uint16 {
	return c.fetch16()
}

func modeAbsX(c *CPU, penalty bool) uint16 {
	base := c.fetch16()
	end := base + uint16(c.X)
	if penalty && crossesPage(base, end) {
		c.ClockTicks++
	}
	return end
}

func modeAbsY(c *CPU, penalty bool) uint16 {
	base := c.fetch16()
	end := base + uint16(c.Y)
	if penalty && crossesPage(base, end) {
		c.ClockTicks++
	}
	return end
}

// modeInd is absolute indirect, used only by JMP (ind). The 65C02 fixes the
// NMOS 6502 page-wrap bug at xxFF.
func modeInd(c *CPU, penalty bool) uint16 {
	ptr := c.fetch16()
	return c.read16(ptr)
}

// modeIndX is (zp,X): zero-page pointer, indexed before the indirection,
// wrapped within page 0.
func modeIndX(c *CPU, penalty bool) uint16 {
	zp := c.fetch8() + c.X
	return c.read16zp(zp)
}

// modeIndY is (zp),Y: zero-page pointer, indirection first, then indexed.
func modeIndY(c *CPU, penalty bool) uint16 {
	zp := c.fetch8()
	base := c.read16zp(zp)
	end := base + uint16(c.Y)
	if penalty && crossesPage(base, end) {
		c.ClockTicks++
	}
	return end
}

// modeIndZP is the 65C02-added (zp) mode: zero-page pointer, no index.
func modeIndZP(c *CPU, penalty bool) uint16 {
	zp := c.fetch8()
	return c.read16zp(zp)
}

// modeRel resolves a branch target relative to PC *after* the operand byte.
func modeRel(c *CPU, penalty bool) uint16 {
	offset := int8(c.fetch8())
	return uint16(int32(c.PC) + int32(offset))
}

// modeAinx is absolute indexed indirect: *(abs + X), used only by the
// 65C02's JMP (abs,X).
func modeAinx(c *CPU, penalty bool) uint16 {
	base := c.fetch16()
	ptr := base + uint16(c.X)
	return c.read16(ptr)
}

// modeZPRel resolves the BBRx/BBSx operand: a zero-page address to test,
// plus the branch target (PC after the operand plus the signed offset)
// stashed in c.EA for the opcode body to use.
func modeZPRel(c *CPU, penalty bool) uint16 {
	zpAddr := uint16(c.fetch8())
	offset := int8(c.fetch8())
	target := uint16(int32(c.PC) + int32(offset))
	if penalty && crossesPage(c.PC, target) {
		c.ClockTicks++
	}
	c.EA = target
	return zpAddr
}
