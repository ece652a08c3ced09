package cpu

import "github.com/coreforge/corewar/pkg/isa"

// Two-operand arithmetic/logical instructions write their result to a
// register destination (cmp only sets flags) and reset flags before
// setting a fresh set,
// per the spec's resolution of the source's flag-accumulation quirk.

func (c *CPU) execAdd(src isa.Operand, dst uint16) {
	d := c.reg(dst)
	s := c.read(src)
	sum := uint32(d) + uint32(s)
	result := uint16(sum)
	c.setReg(dst, result)

	c.Flags.Reset()
	c.Flags.SetC(sum > 0xFFFF)
	c.Flags.SetZ(result == 0)
	c.Flags.SetN(result&0x8000 != 0)
}

func (c *CPU) execSub(src isa.Operand, dst uint16) {
	d := c.reg(dst)
	s := c.read(src)
	result := d - s
	c.setReg(dst, result)

	c.Flags.Reset()
	c.Flags.SetC(result > d)
	c.Flags.SetZ(result == 0)
	c.Flags.SetN(result&0x8000 != 0)
}

func (c *CPU) execCmp(src isa.Operand, dst uint16) {
	d := c.reg(dst)
	s := c.read(src)
	diff := int32(d) - int32(s)

	c.Flags.Reset()
	c.Flags.SetC(d < s)
	c.Flags.SetZ(diff == 0)
	c.Flags.SetN(diff < 0)
}

func (c *CPU) execAnd(src isa.Operand, dst uint16) { c.execBitwise(src, dst, func(d, s uint16) uint16 { return d & s }) }
func (c *CPU) execOr(src isa.Operand, dst uint16)  { c.execBitwise(src, dst, func(d, s uint16) uint16 { return d | s }) }
func (c *CPU) execXor(src isa.Operand, dst uint16) { c.execBitwise(src, dst, func(d, s uint16) uint16 { return d ^ s }) }

func (c *CPU) execBitwise(src isa.Operand, dst uint16, op func(d, s uint16) uint16) {
	d := c.reg(dst)
	s := c.read(src)
	result := op(d, s)
	c.setReg(dst, result)

	c.Flags.Reset()
	c.Flags.SetZ(result == 0)
	c.Flags.SetN(result&0x8000 != 0)
}

// execNot inverts the source register in place; it is single-operand,
// the register doubling as both operand and destination.
func (c *CPU) execNot(src isa.Operand) {
	result := ^c.reg(src.Value)
	c.setReg(src.Value, result)

	c.Flags.Reset()
	c.Flags.SetZ(result == 0)
	c.Flags.SetN(result&0x8000 != 0)
}

// execLsl shifts the destination register left by the resolved source
// value. Carry reflects bit 15 of the shifted result, not the
// pre-shift operand — this matches the reference CPU's actual
// implementation, which computes carry after reassigning the register.
func (c *CPU) execLsl(src isa.Operand, dst uint16) {
	d := c.reg(dst)
	s := c.read(src)
	result := d << s

	c.setReg(dst, result)
	result = c.reg(dst)

	c.Flags.Reset()
	c.Flags.SetC(result&0x8000 != 0)
	c.Flags.SetN(result&0x8000 != 0)
	c.Flags.SetZ(result == 0)
}

// execLsr shifts the destination register right by the resolved source
// value. Carry reflects bit 0 of the shifted result.
func (c *CPU) execLsr(src isa.Operand, dst uint16) {
	d := c.reg(dst)
	s := c.read(src)
	result := d >> s

	c.setReg(dst, result)
	result = c.reg(dst)

	c.Flags.Reset()
	c.Flags.SetC(result&0x1 != 0)
	c.Flags.SetN(result&0x8000 != 0)
	c.Flags.SetZ(result == 0)
}
