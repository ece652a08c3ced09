package cpu

import "github.com/coreforge/corewar/pkg/isa"

// predicate implements the six condition codes shared by the branch and
// jump instruction families.
func (c *CPU) predicate(op isa.OpCode) bool {
	carry, zero := c.Flags.C(), c.Flags.Z()
	switch op {
	case isa.Bcc, isa.Jcc:
		return !carry
	case isa.Bcs, isa.Jcs:
		return carry
	case isa.Beq, isa.Jeq:
		return zero
	case isa.Bne, isa.Jne:
		return !zero
	case isa.Ble, isa.Jle:
		return zero || carry
	case isa.Bge, isa.Jge:
		return zero || !carry
	case isa.Bra, isa.Jmp:
		return true
	default:
		return false
	}
}

// execBranch adds the resolved source value to PC (already advanced past
// the instruction) when the predicate holds.
func (c *CPU) execBranch(op isa.OpCode, src isa.Operand) {
	if !c.predicate(op) {
		return
	}
	c.Reg[PC] += c.read(src)
}

// execJump assigns PC to the resolved source value when the predicate holds.
func (c *CPU) execJump(op isa.OpCode, src isa.Operand) {
	if !c.predicate(op) {
		return
	}
	c.Reg[PC] = c.read(src)
}

func (c *CPU) execBsr(src isa.Operand) {
	c.pushValue(c.Reg[PC])
	c.Reg[PC] += c.read(src)
}

func (c *CPU) execJsr(src isa.Operand) {
	c.pushValue(c.Reg[PC])
	c.Reg[PC] = c.read(src)
}

func (c *CPU) execRts() {
	c.Reg[PC] = c.popValue()
}

func (c *CPU) execPush(src isa.Operand) {
	value := c.read(src)
	c.pushValue(value)

	c.Flags.Reset()
	c.Flags.SetC(false)
	c.Flags.SetN(value&0x8000 != 0)
	c.Flags.SetZ(value == 0)
}

// execPop writes the popped value to wherever src names. Writing to an
// immediate operand is illegal; the caller routes that to the ILLEGAL
// vector.
func (c *CPU) execPop(src isa.Operand) bool {
	value := c.popValue()
	ok := c.writeWord(src, value)

	c.Flags.Reset()
	c.Flags.SetC(false)
	c.Flags.SetN(value&0x8000 != 0)
	c.Flags.SetZ(value == 0)
	return ok
}

// pushValue is the shared SP-pre-decrement, big-endian word store used by
// push, bsr, jsr, and interrupt entry.
func (c *CPU) pushValue(value uint16) {
	c.setReg(SP, c.reg(SP)-2)
	addr := memAddr(c.reg(SP))
	c.Memory[addr] = byte(value >> 8)
	c.Memory[addr+1] = byte(value)
}

// popValue is the shared SP-post-increment, big-endian word load used by
// pop, rts, and rte.
func (c *CPU) popValue() uint16 {
	addr := memAddr(c.reg(SP))
	value := uint16(c.Memory[addr])<<8 | uint16(c.Memory[addr+1])
	c.setReg(SP, c.reg(SP)+2)
	return value
}
