package cpu

// arithFunc is the shape shared by ADC and SBC bodies, selected per the D
// flag. Rather than branch on D inside every ADC/SBC, the CPU swaps these
// two function pointers whenever SED/CLD run, so the hot path pays no
// per-instruction decimal check.
type arithFunc func(c *CPU, addr uint16)

func (c *CPU) adc(addr uint16) { c.adcImpl(c, addr) }
func (c *CPU) sbc(addr uint16) { c.sbcImpl(c, addr) }

// installBinaryArith wires ADC/SBC to plain two's-complement arithmetic.
// Called on reset and whenever CLD retires.
func (c *CPU) installBinaryArith() {
	c.adcImpl = adcBinary
	c.sbcImpl = sbcBinary
}

// installDecimalArith wires ADC/SBC to BCD-adjusted arithmetic, matching
// the 65C02's corrected behavior of setting N/Z/V from the decimal result
// rather than the NMOS 6502's unadjusted binary sum. Called whenever SED
// retires.
func (c *CPU) installDecimalArith() {
	c.adcImpl = adcDecimal
	c.sbcImpl = sbcDecimal
}

func adcBinary(c *CPU, addr uint16) {
	value := c.read(addr)
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	overflow := (^(uint16(c.A) ^ uint16(value)) & (uint16(c.A) ^ sum) & 0x80) != 0

	c.A = uint8(sum)
	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, overflow)
	c.setZN(c.A)
}

func sbcBinary(c *CPU, addr uint16) {
	value := c.read(addr) ^ 0xFF
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	overflow := (^(uint16(c.A) ^ uint16(value)) & (uint16(c.A) ^ sum) & 0x80) != 0

	c.A = uint8(sum)
	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, overflow)
	c.setZN(c.A)
}

// adcDecimal performs nibble-wise BCD addition. See
// http://www.6502.org/tutorials/decimal_mode.html method II; the 65C02
// variant this models sets N, Z, V and C from the adjusted decimal result
// (the NMOS 6502 famously leaves N/V stale here).
func adcDecimal(c *CPU, addr uint16) {
	value := c.read(addr)
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}

	lo := uint16(c.A&0x0F) + uint16(value&0x0F) + carryIn
	hi := uint16(c.A&0xF0) + uint16(value&0xF0)
	if lo > 0x09 {
		lo += 0x06
		hi += 0x10
	}

	if hi > 0x90 {
		hi += 0x60
	}

	result := uint8((hi & 0xF0) | (lo & 0x0F))
	overflow := ((result ^ c.A) & (result ^ value) & 0x80) != 0
	c.SetFlag(FlagC, hi > 0xFF)
	c.SetFlag(FlagV, overflow)
	c.A = result
	c.setZN(c.A)
}

// sbcDecimal mirrors adcDecimal for subtraction (method II borrow form).
func sbcDecimal(c *CPU, addr uint16) {
	value := c.read(addr)
	borrowIn := int16(1)
	if c.GetFlag(FlagC) {
		borrowIn = 0
	}

	lo := int16(c.A&0x0F) - int16(value&0x0F) - borrowIn
	hi := int16(c.A&0xF0) - int16(value&0xF0)
	if lo < 0 {
		lo -= 0x06
		hi -= 0x10
	}
	if hi < 0 {
		hi -= 0x60
	}

	binDiff := int16(c.A) - int16(value) - borrowIn

	result := uint8((hi & 0xF0) | (lo & 0x0F))
	overflow := ((c.A ^ value) & (c.A ^ result) & 0x80) != 0
	c.SetFlag(FlagC, binDiff >= 0)
	c.SetFlag(FlagV, overflow)
	c.A = result
	c.setZN(c.A)
}
