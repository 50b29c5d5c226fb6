package cpu

// execFunc is the shape every opcodeEntry.exec value takes.
type execFunc func(c *CPU, e opcodeEntry)

// memOp adapts a (cpu, address) operation into a full opcode handler by
// resolving the operand address through the entry's addressing mode first.
func memOp(f func(c *CPU, addr uint16)) execFunc {
	return func(c *CPU, e opcodeEntry) {
		addr := e.mode(c, e.penalty)
		f(c, addr)
	}
}

// accOp adapts an accumulator-only operation (ASL/LSR/ROL/ROR A) so the
// shared entry literal shape still runs the mode resolver (a no-op for imp
// or implicit accumulator addressing, but keeps Step's dispatch uniform).
func accOp(f func(c *CPU)) execFunc {
	return func(c *CPU, e opcodeEntry) {
		e.mode(c, e.penalty)
		f(c)
	}
}

func regOp(f execFunc) execFunc {
	return func(c *CPU, e opcodeEntry) {
		f(c, e)
	}
}

func branchOp(mask uint8, want bool) execFunc {
	return func(c *CPU, e opcodeEntry) {
		offset := int8(c.fetch8())
		base := c.PC
		if c.GetFlag(mask) == want {
			target := uint16(int32(base) + int32(offset))
			if crossesPage(base, target) {
				c.ClockTicks += 2
			}
			c.ClockTicks++
			c.PC = target
		}
	}
}

func branchAlways(c *CPU, e opcodeEntry) {
	offset := int8(c.fetch8())
	base := c.PC
	target := uint16(int32(base) + int32(offset))
	if crossesPage(base, target) {
		c.ClockTicks += 2
	}
	c.PC = target
}

func opJMP(c *CPU, e opcodeEntry) {
	c.PC = e.mode(c, e.penalty)
}

func opJSR(c *CPU, e opcodeEntry) {
	addr := c.fetch16()
	c.push16(c.PC - 1)
	c.PC = addr
}

func opRTS(c *CPU, e opcodeEntry) {
	c.PC = c.pull16() + 1
}

func opBRK(c *CPU, e opcodeEntry) {
	c.push16(c.PC + 1)
	c.push8(c.P | FlagB | Flag1)
	c.SetFlag(FlagI, true)
	c.SetFlag(FlagD, false)
	c.installBinaryArith()
	c.PC = c.readVector(VectorIRQ)
}

func opRTI(c *CPU, e opcodeEntry) {
	p := c.pull8()
	c.P = (p | Flag1) &^ FlagB
	c.PC = c.pull16()
	c.syncDecimalTable()
}

func (c *CPU) syncDecimalTable() {
	if c.GetFlag(FlagD) {
		c.installDecimalArith()
	} else {
		c.installBinaryArith()
	}
}

func opPHP(c *CPU, e opcodeEntry) { c.push8(c.P | FlagB | Flag1) }
func opPLP(c *CPU, e opcodeEntry) {
	p := c.pull8()
	c.P = (p | Flag1) &^ FlagB
	c.syncDecimalTable()
}
func opPHA(c *CPU, e opcodeEntry) { c.push8(c.A) }
func opPLA(c *CPU, e opcodeEntry) { c.A = c.pull8(); c.setZN(c.A) }
func opPHX(c *CPU, e opcodeEntry) { c.push8(c.X) }
func opPLX(c *CPU, e opcodeEntry) { c.X = c.pull8(); c.setZN(c.X) }
func opPHY(c *CPU, e opcodeEntry) { c.push8(c.Y) }
func opPLY(c *CPU, e opcodeEntry) { c.Y = c.pull8(); c.setZN(c.Y) }

func opTAX(c *CPU, e opcodeEntry) { c.X = c.A; c.setZN(c.X) }
func opTAY(c *CPU, e opcodeEntry) { c.Y = c.A; c.setZN(c.Y) }
func opTXA(c *CPU, e opcodeEntry) { c.A = c.X; c.setZN(c.A) }
func opTYA(c *CPU, e opcodeEntry) { c.A = c.Y; c.setZN(c.A) }
func opTXS(c *CPU, e opcodeEntry) { c.SP = c.X }
func opTSX(c *CPU, e opcodeEntry) { c.X = c.SP; c.setZN(c.X) }

func opINX(c *CPU, e opcodeEntry) { c.X++; c.setZN(c.X) }
func opINY(c *CPU, e opcodeEntry) { c.Y++; c.setZN(c.Y) }
func opDEX(c *CPU, e opcodeEntry) { c.X--; c.setZN(c.X) }
func opDEY(c *CPU, e opcodeEntry) { c.Y--; c.setZN(c.Y) }

func opCLC(c *CPU, e opcodeEntry) { c.SetFlag(FlagC, false) }
func opSEC(c *CPU, e opcodeEntry) { c.SetFlag(FlagC, true) }
func opCLI(c *CPU, e opcodeEntry) { c.SetFlag(FlagI, false) }
func opSEI(c *CPU, e opcodeEntry) { c.SetFlag(FlagI, true) }
func opCLV(c *CPU, e opcodeEntry) { c.SetFlag(FlagV, false) }
func opCLD(c *CPU, e opcodeEntry) {
	c.SetFlag(FlagD, false)
	c.installBinaryArith()
}
func opSED(c *CPU, e opcodeEntry) {
	c.SetFlag(FlagD, true)
	c.installDecimalArith()
}

func opNOP(c *CPU, e opcodeEntry) {}

func opWAI(c *CPU, e opcodeEntry) { c.WAI = true }
func opSTP(c *CPU, e opcodeEntry) { c.Stopped = true }

func opLDA(c *CPU, addr uint16) { c.A = c.read(addr); c.setZN(c.A) }
func opLDX(c *CPU, addr uint16) { c.X = c.read(addr); c.setZN(c.X) }
func opLDY(c *CPU, addr uint16) { c.Y = c.read(addr); c.setZN(c.Y) }
func opSTA(c *CPU, addr uint16) { c.write(addr, c.A) }
func opSTX(c *CPU, addr uint16) { c.write(addr, c.X) }
func opSTY(c *CPU, addr uint16) { c.write(addr, c.Y) }
func opSTZ(c *CPU, addr uint16) { c.write(addr, 0) }

func opCMP(c *CPU, addr uint16) { c.compare(c.A, c.read(addr)) }
func opCPX(c *CPU, addr uint16) { c.compare(c.X, c.read(addr)) }
func opCPY(c *CPU, addr uint16) { c.compare(c.Y, c.read(addr)) }

func opBITmem(c *CPU, addr uint16) { c.bit(addr, false) }
func opBITimm(c *CPU, addr uint16) { c.bit(addr, true) }

func opADC(c *CPU, addr uint16) { c.adc(addr) }
func opSBC(c *CPU, addr uint16) { c.sbc(addr) }

// def registers a fully-specified opcode entry.
func def(table *[256]opcodeEntry, code uint8, name string, mode modeFunc, cycles uint8, penalty bool, exec execFunc) {
	table[code] = opcodeEntry{name: name, mode: mode, cycles: cycles, penalty: penalty, exec: exec}
}

// buildOpcodeTable populates the 256-entry dispatch table. Every byte not
// explicitly assigned a legal 65C02 instruction defaults to a two-cycle,
// single-byte NOP.
func (c *CPU) buildOpcodeTable() {
	t := &c.opcodes
	for i := range t {
		t[i] = opcodeEntry{name: "NOP", mode: modeImp, cycles: 2, exec: opNOP}
	}

	// Loads
	def(t, 0xA9, "LDA", modeImm, 2, false, memOp(opLDA))
	def(t, 0xA5, "LDA", modeZP, 3, false, memOp(opLDA))
	def(t, 0xB5, "LDA", modeZPX, 4, false, memOp(opLDA))
	def(t, 0xAD, "LDA", modeAbs, 4, false, memOp(opLDA))
	def(t, 0xBD, "LDA", modeAbsX, 4, true, memOp(opLDA))
	def(t, 0xB9, "LDA", modeAbsY, 4, true, memOp(opLDA))
	def(t, 0xA1, "LDA", modeIndX, 6, false, memOp(opLDA))
	def(t, 0xB1, "LDA", modeIndY, 5, true, memOp(opLDA))
	def(t, 0xB2, "LDA", modeIndZP, 5, false, memOp(opLDA))

	def(t, 0xA2, "LDX", modeImm, 2, false, memOp(opLDX))
	def(t, 0xA6, "LDX", modeZP, 3, false, memOp(opLDX))
	def(t, 0xB6, "LDX", modeZPY, 4, false, memOp(opLDX))
	def(t, 0xAE, "LDX", modeAbs, 4, false, memOp(opLDX))
	def(t, 0xBE, "LDX", modeAbsY, 4, true, memOp(opLDX))

	def(t, 0xA0, "LDY", modeImm, 2, false, memOp(opLDY))
	def(t, 0xA4, "LDY", modeZP, 3, false, memOp(opLDY))
	def(t, 0xB4, "LDY", modeZPX, 4, false, memOp(opLDY))
	def(t, 0xAC, "LDY", modeAbs, 4, false, memOp(opLDY))
	def(t, 0xBC, "LDY", modeAbsX, 4, true, memOp(opLDY))

	// Stores
	def(t, 0x85, "STA", modeZP, 3, false, memOp(opSTA))
	def(t, 0x95, "STA", modeZPX, 4, false, memOp(opSTA))
	def(t, 0x8D, "STA", modeAbs, 4, false, memOp(opSTA))
	def(t, 0x9D, "STA", modeAbsX, 5, false, memOp(opSTA))
	def(t, 0x99, "STA", modeAbsY, 5, false, memOp(opSTA))
	def(t, 0x81, "STA", modeIndX, 6, false, memOp(opSTA))
	def(t, 0x91, "STA", modeIndY, 6, false, memOp(opSTA))
	def(t, 0x92, "STA", modeIndZP, 5, false, memOp(opSTA))

	def(t, 0x86, "STX", modeZP, 3, false, memOp(opSTX))
	def(t, 0x96, "STX", modeZPY, 4, false, memOp(opSTX))
	def(t, 0x8E, "STX", modeAbs, 4, false, memOp(opSTX))

	def(t, 0x84, "STY", modeZP, 3, false, memOp(opSTY))
	def(t, 0x94, "STY", modeZPX, 4, false, memOp(opSTY))
	def(t, 0x8C, "STY", modeAbs, 4, false, memOp(opSTY))

	def(t, 0x64, "STZ", modeZP, 3, false, memOp(opSTZ))
	def(t, 0x74, "STZ", modeZPX, 4, false, memOp(opSTZ))
	def(t, 0x9C, "STZ", modeAbs, 4, false, memOp(opSTZ))
	def(t, 0x9E, "STZ", modeAbsX, 5, false, memOp(opSTZ))

	// Arithmetic
	def(t, 0x69, "ADC", modeImm, 2, false, memOp(opADC))
	def(t, 0x65, "ADC", modeZP, 3, false, memOp(opADC))
	def(t, 0x75, "ADC", modeZPX, 4, false, memOp(opADC))
	def(t, 0x6D, "ADC", modeAbs, 4, false, memOp(opADC))
	def(t, 0x7D, "ADC", modeAbsX, 4, true, memOp(opADC))
	def(t, 0x79, "ADC", modeAbsY, 4, true, memOp(opADC))
	def(t, 0x61, "ADC", modeIndX, 6, false, memOp(opADC))
	def(t, 0x71, "ADC", modeIndY, 5, true, memOp(opADC))
	def(t, 0x72, "ADC", modeIndZP, 5, false, memOp(opADC))

	def(t, 0xE9, "SBC", modeImm, 2, false, memOp(opSBC))
	def(t, 0xE5, "SBC", modeZP, 3, false, memOp(opSBC))
	def(t, 0xF5, "SBC", modeZPX, 4, false, memOp(opSBC))
	def(t, 0xED, "SBC", modeAbs, 4, false, memOp(opSBC))
	def(t, 0xFD, "SBC", modeAbsX, 4, true, memOp(opSBC))
	def(t, 0xF9, "SBC", modeAbsY, 4, true, memOp(opSBC))
	def(t, 0xE1, "SBC", modeIndX, 6, false, memOp(opSBC))
	def(t, 0xF1, "SBC", modeIndY, 5, true, memOp(opSBC))
	def(t, 0xF2, "SBC", modeIndZP, 5, false, memOp(opSBC))

	// Logical
	def(t, 0x29, "AND", modeImm, 2, false, memOp((*CPU).and))
	def(t, 0x25, "AND", modeZP, 3, false, memOp((*CPU).and))
	def(t, 0x35, "AND", modeZPX, 4, false, memOp((*CPU).and))
	def(t, 0x2D, "AND", modeAbs, 4, false, memOp((*CPU).and))
	def(t, 0x3D, "AND", modeAbsX, 4, true, memOp((*CPU).and))
	def(t, 0x39, "AND", modeAbsY, 4, true, memOp((*CPU).and))
	def(t, 0x21, "AND", modeIndX, 6, false, memOp((*CPU).and))
	def(t, 0x31, "AND", modeIndY, 5, true, memOp((*CPU).and))
	def(t, 0x32, "AND", modeIndZP, 5, false, memOp((*CPU).and))

	def(t, 0x09, "ORA", modeImm, 2, false, memOp((*CPU).ora))
	def(t, 0x05, "ORA", modeZP, 3, false, memOp((*CPU).ora))
	def(t, 0x15, "ORA", modeZPX, 4, false, memOp((*CPU).ora))
	def(t, 0x0D, "ORA", modeAbs, 4, false, memOp((*CPU).ora))
	def(t, 0x1D, "ORA", modeAbsX, 4, true, memOp((*CPU).ora))
	def(t, 0x19, "ORA", modeAbsY, 4, true, memOp((*CPU).ora))
	def(t, 0x01, "ORA", modeIndX, 6, false, memOp((*CPU).ora))
	def(t, 0x11, "ORA", modeIndY, 5, true, memOp((*CPU).ora))
	def(t, 0x12, "ORA", modeIndZP, 5, false, memOp((*CPU).ora))

	def(t, 0x49, "EOR", modeImm, 2, false, memOp((*CPU).eor))
	def(t, 0x45, "EOR", modeZP, 3, false, memOp((*CPU).eor))
	def(t, 0x55, "EOR", modeZPX, 4, false, memOp((*CPU).eor))
	def(t, 0x4D, "EOR", modeAbs, 4, false, memOp((*CPU).eor))
	def(t, 0x5D, "EOR", modeAbsX, 4, true, memOp((*CPU).eor))
	def(t, 0x59, "EOR", modeAbsY, 4, true, memOp((*CPU).eor))
	def(t, 0x41, "EOR", modeIndX, 6, false, memOp((*CPU).eor))
	def(t, 0x51, "EOR", modeIndY, 5, true, memOp((*CPU).eor))
	def(t, 0x52, "EOR", modeIndZP, 5, false, memOp((*CPU).eor))

	// Compare
	def(t, 0xC9, "CMP", modeImm, 2, false, memOp(opCMP))
	def(t, 0xC5, "CMP", modeZP, 3, false, memOp(opCMP))
	def(t, 0xD5, "CMP", modeZPX, 4, false, memOp(opCMP))
	def(t, 0xCD, "CMP", modeAbs, 4, false, memOp(opCMP))
	def(t, 0xDD, "CMP", modeAbsX, 4, true, memOp(opCMP))
	def(t, 0xD9, "CMP", modeAbsY, 4, true, memOp(opCMP))
	def(t, 0xC1, "CMP", modeIndX, 6, false, memOp(opCMP))
	def(t, 0xD1, "CMP", modeIndY, 5, true, memOp(opCMP))
	def(t, 0xD2, "CMP", modeIndZP, 5, false, memOp(opCMP))

	def(t, 0xE0, "CPX", modeImm, 2, false, memOp(opCPX))
	def(t, 0xE4, "CPX", modeZP, 3, false, memOp(opCPX))
	def(t, 0xEC, "CPX", modeAbs, 4, false, memOp(opCPX))

	def(t, 0xC0, "CPY", modeImm, 2, false, memOp(opCPY))
	def(t, 0xC4, "CPY", modeZP, 3, false, memOp(opCPY))
	def(t, 0xCC, "CPY", modeAbs, 4, false, memOp(opCPY))

	// Bit test
	def(t, 0x89, "BIT", modeImm, 2, false, memOp(opBITimm))
	def(t, 0x24, "BIT", modeZP, 3, false, memOp(opBITmem))
	def(t, 0x34, "BIT", modeZPX, 4, false, memOp(opBITmem))
	def(t, 0x2C, "BIT", modeAbs, 4, false, memOp(opBITmem))
	def(t, 0x3C, "BIT", modeAbsX, 4, true, memOp(opBITmem))

	def(t, 0x04, "TSB", modeZP, 5, false, memOp((*CPU).tsb))
	def(t, 0x0C, "TSB", modeAbs, 6, false, memOp((*CPU).tsb))
	def(t, 0x14, "TRB", modeZP, 5, false, memOp((*CPU).trb))
	def(t, 0x1C, "TRB", modeAbs, 6, false, memOp((*CPU).trb))

	// Shifts/rotates
	def(t, 0x0A, "ASL", modeAcc, 2, false, accOp((*CPU).aslAcc))
	def(t, 0x06, "ASL", modeZP, 5, false, memOp((*CPU).aslMem))
	def(t, 0x16, "ASL", modeZPX, 6, false, memOp((*CPU).aslMem))
	def(t, 0x0E, "ASL", modeAbs, 6, false, memOp((*CPU).aslMem))
	def(t, 0x1E, "ASL", modeAbsX, 6, false, memOp((*CPU).aslMem))

	def(t, 0x4A, "LSR", modeAcc, 2, false, accOp((*CPU).lsrAcc))
	def(t, 0x46, "LSR", modeZP, 5, false, memOp((*CPU).lsrMem))
	def(t, 0x56, "LSR", modeZPX, 6, false, memOp((*CPU).lsrMem))
	def(t, 0x4E, "LSR", modeAbs, 6, false, memOp((*CPU).lsrMem))
	def(t, 0x5E, "LSR", modeAbsX, 6, false, memOp((*CPU).lsrMem))

	def(t, 0x2A, "ROL", modeAcc, 2, false, accOp((*CPU).rolAcc))
	def(t, 0x26, "ROL", modeZP, 5, false, memOp((*CPU).rolMem))
	def(t, 0x36, "ROL", modeZPX, 6, false, memOp((*CPU).rolMem))
	def(t, 0x2E, "ROL", modeAbs, 6, false, memOp((*CPU).rolMem))
	def(t, 0x3E, "ROL", modeAbsX, 6, false, memOp((*CPU).rolMem))

	def(t, 0x6A, "ROR", modeAcc, 2, false, accOp((*CPU).rorAcc))
	def(t, 0x66, "ROR", modeZP, 5, false, memOp((*CPU).rorMem))
	def(t, 0x76, "ROR", modeZPX, 6, false, memOp((*CPU).rorMem))
	def(t, 0x6E, "ROR", modeAbs, 6, false, memOp((*CPU).rorMem))
	def(t, 0x7E, "ROR", modeAbsX, 6, false, memOp((*CPU).rorMem))

	// Inc/dec memory
	def(t, 0xE6, "INC", modeZP, 5, false, memOp((*CPU).incMem))
	def(t, 0xF6, "INC", modeZPX, 6, false, memOp((*CPU).incMem))
	def(t, 0xEE, "INC", modeAbs, 6, false, memOp((*CPU).incMem))
	def(t, 0xFE, "INC", modeAbsX, 6, false, memOp((*CPU).incMem))
	def(t, 0x1A, "INC", modeAcc, 2, false, accOp(func(c *CPU) { c.A++; c.setZN(c.A) }))

	def(t, 0xC6, "DEC", modeZP, 5, false, memOp((*CPU).decMem))
	def(t, 0xD6, "DEC", modeZPX, 6, false, memOp((*CPU).decMem))
	def(t, 0xCE, "DEC", modeAbs, 6, false, memOp((*CPU).decMem))
	def(t, 0xDE, "DEC", modeAbsX, 6, false, memOp((*CPU).decMem))
	def(t, 0x3A, "DEC", modeAcc, 2, false, accOp(func(c *CPU) { c.A--; c.setZN(c.A) }))

	// Register transfers / inc-dec
	def(t, 0xAA, "TAX", modeImp, 2, false, regOp(opTAX))
	def(t, 0xA8, "TAY", modeImp, 2, false, regOp(opTAY))
	def(t, 0x8A, "TXA", modeImp, 2, false, regOp(opTXA))
	def(t, 0x98, "TYA", modeImp, 2, false, regOp(opTYA))
	def(t, 0x9A, "TXS", modeImp, 2, false, regOp(opTXS))
	def(t, 0xBA, "TSX", modeImp, 2, false, regOp(opTSX))
	def(t, 0xE8, "INX", modeImp, 2, false, regOp(opINX))
	def(t, 0xC8, "INY", modeImp, 2, false, regOp(opINY))
	def(t, 0xCA, "DEX", modeImp, 2, false, regOp(opDEX))
	def(t, 0x88, "DEY", modeImp, 2, false, regOp(opDEY))

	// Stack
	def(t, 0x48, "PHA", modeImp, 3, false, opPHA)
	def(t, 0x68, "PLA", modeImp, 4, false, opPLA)
	def(t, 0x08, "PHP", modeImp, 3, false, opPHP)
	def(t, 0x28, "PLP", modeImp, 4, false, opPLP)
	def(t, 0xDA, "PHX", modeImp, 3, false, opPHX)
	def(t, 0xFA, "PLX", modeImp, 4, false, opPLX)
	def(t, 0x5A, "PHY", modeImp, 3, false, opPHY)
	def(t, 0x7A, "PLY", modeImp, 4, false, opPLY)

	// Control flow
	def(t, 0x4C, "JMP", modeAbs, 3, false, opJMP)
	def(t, 0x6C, "JMP", modeInd, 5, false, opJMP)
	def(t, 0x7C, "JMP", modeAinx, 6, false, opJMP)
	def(t, 0x20, "JSR", modeAbs, 6, false, opJSR)
	def(t, 0x60, "RTS", modeImp, 6, false, opRTS)
	def(t, 0x00, "BRK", modeImp, 7, false, opBRK)
	def(t, 0x40, "RTI", modeImp, 6, false, opRTI)
	def(t, 0x80, "BRA", modeRel, 3, false, branchAlways)

	def(t, 0x10, "BPL", modeRel, 2, false, branchOp(FlagN, false))
	def(t, 0x30, "BMI", modeRel, 2, false, branchOp(FlagN, true))
	def(t, 0x50, "BVC", modeRel, 2, false, branchOp(FlagV, false))
	def(t, 0x70, "BVS", modeRel, 2, false, branchOp(FlagV, true))
	def(t, 0x90, "BCC", modeRel, 2, false, branchOp(FlagC, false))
	def(t, 0xB0, "BCS", modeRel, 2, false, branchOp(FlagC, true))
	def(t, 0xD0, "BNE", modeRel, 2, false, branchOp(FlagZ, false))
	def(t, 0xF0, "BEQ", modeRel, 2, false, branchOp(FlagZ, true))

	// Flags
	def(t, 0x18, "CLC", modeImp, 2, false, opCLC)
	def(t, 0x38, "SEC", modeImp, 2, false, opSEC)
	def(t, 0x58, "CLI", modeImp, 2, false, opCLI)
	def(t, 0x78, "SEI", modeImp, 2, false, opSEI)
	def(t, 0xB8, "CLV", modeImp, 2, false, opCLV)
	def(t, 0xD8, "CLD", modeImp, 2, false, opCLD)
	def(t, 0xF8, "SED", modeImp, 2, false, opSED)

	def(t, 0xEA, "NOP", modeImp, 2, false, opNOP)
	def(t, 0xCB, "WAI", modeImp, 3, false, opWAI)
	def(t, 0xDB, "STP", modeImp, 3, false, opSTP)

	// Bit set/clear/test/branch (65C02 additions). Opcode layout: low
	// nibble 7 = RMB/BBR, F = SMB/BBS; high nibble selects the bit.
	rmbCodes := [8]uint8{0x07, 0x17, 0x27, 0x37, 0x47, 0x57, 0x67, 0x77}
	smbCodes := [8]uint8{0x87, 0x97, 0xA7, 0xB7, 0xC7, 0xD7, 0xE7, 0xF7}
	bbrCodes := [8]uint8{0x0F, 0x1F, 0x2F, 0x3F, 0x4F, 0x5F, 0x6F, 0x7F}
	bbsCodes := [8]uint8{0x8F, 0x9F, 0xAF, 0xBF, 0xCF, 0xDF, 0xEF, 0xFF}
	for bit := uint8(0); bit < 8; bit++ {
		def(t, rmbCodes[bit], "RMB", modeZP, 5, false, memOp(rmb(bit)))
		def(t, smbCodes[bit], "SMB", modeZP, 5, false, memOp(smb(bit)))
		def(t, bbrCodes[bit], "BBR", modeZPRel, 5, false, memOp(bbr(bit)))
		def(t, bbsCodes[bit], "BBS", modeZPRel, 5, false, memOp(bbs(bit)))
	}
}
