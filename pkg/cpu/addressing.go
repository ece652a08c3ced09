package cpu

import "github.com/coreforge/corewar/pkg/isa"

// readStep resolves a single-operand/two-operand read, applying the
// addressing mode's side effects (pre-decrement/post-increment of the
// backing register). step is 2 for ordinary word-sized access, 1 for the
// byte-at-a-time move.h/move.l variants. Memory-backed modes read exactly
// one byte — the machine's memory is byte-addressed, and only the
// explicit 2-byte helpers (push, pop, interrupt entry) assemble a word
// out of two cells.
func (c *CPU) readStep(o isa.Operand, step uint16) uint16 {
	switch o.Mode {
	case isa.ModeRegister:
		return c.reg(o.Value)
	case isa.ModePreDec:
		c.setReg(o.Value, c.reg(o.Value)-step)
		return uint16(c.Memory[memAddr(c.reg(o.Value))])
	case isa.ModeIndirect:
		return uint16(c.Memory[memAddr(c.reg(o.Value))])
	case isa.ModePostInc:
		v := uint16(c.Memory[memAddr(c.reg(o.Value))])
		c.setReg(o.Value, c.reg(o.Value)+step)
		return v
	case isa.ModeImmediate:
		return o.Value
	case isa.ModeAbsolute:
		return uint16(c.Memory[memAddr(o.Value)])
	default:
		return 0
	}
}

// read is readStep with the ordinary word step size.
func (c *CPU) read(o isa.Operand) uint16 {
	return c.readStep(o, 2)
}

// writeWord stores a full 16-bit value at the location an operand names,
// splitting it across two memory bytes for every mode but Register.
// Immediate operands are read-only; writing to one is an illegal
// operation routed to the ILLEGAL vector by the caller.
func (c *CPU) writeWord(o isa.Operand, value uint16) bool {
	switch o.Mode {
	case isa.ModeRegister:
		c.setReg(o.Value, value)
	case isa.ModePreDec:
		c.setReg(o.Value, c.reg(o.Value)-2)
		addr := memAddr(c.reg(o.Value))
		c.Memory[addr] = byte(value >> 8)
		c.Memory[addr+1] = byte(value)
	case isa.ModeIndirect:
		addr := memAddr(c.reg(o.Value))
		c.Memory[addr] = byte(value >> 8)
		c.Memory[addr+1] = byte(value)
	case isa.ModePostInc:
		addr := memAddr(c.reg(o.Value))
		c.Memory[addr] = byte(value >> 8)
		c.Memory[addr+1] = byte(value)
		c.setReg(o.Value, c.reg(o.Value)+2)
	case isa.ModeAbsolute:
		addr := memAddr(o.Value)
		c.Memory[addr] = byte(value >> 8)
		c.Memory[addr+1] = byte(value)
	default: // Immediate
		return false
	}
	return true
}

// signExtendNibble interprets a 4-bit field as two's complement: 0..7 are
// +0..+7, 8..15 are -8..-1. This corrects the source implementation's
// arithmetic mistake (documented in the design notes), which instead
// mapped 8 to -1 and 15 to -8.
func signExtendNibble(n uint8) int {
	n &= 0xF
	if n >= 8 {
		return int(n) - 16
	}
	return int(n)
}

// resolveNeighbor splits a packed delta byte into (Δx,Δy) — Δx in the low
// nibble, Δy in the high nibble — and resolves the target CPU through the
// caller's grid view. Used by move's absolute operand (against the high
// byte of its 16-bit field) and by trap (against its full operand value).
func resolveNeighbor(packed uint8, n Neighbors) (*CPU, error) {
	dx := signExtendNibble(packed & 0xF)
	dy := signExtendNibble(packed >> 4)
	return n.At(dx, dy)
}
