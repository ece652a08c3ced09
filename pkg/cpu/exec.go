package cpu

import "github.com/coreforge/corewar/pkg/isa"

// Execute runs exactly one fetch/decode/dispatch/timer-tick cycle. It
// never panics: decode failures, illegal operations, and out-of-bounds
// cross-CPU addresses are all routed to the ILLEGAL vector, matching the
// permissive error-handling contract programs running here depend on.
func (c *CPU) Execute(n Neighbors) {
	pc := c.Reg[PC]
	b0 := c.Memory[memAddr(pc)]

	var instr isa.Instruction
	var err error
	if isa.DecodeOpcode(b0) == isa.Move {
		var buf [4]byte
		for i := range buf {
			buf[i] = c.Memory[memAddr(pc+uint16(i))]
		}
		instr, err = isa.Decode4(buf)
		c.Reg[PC] = pc + 4
	} else {
		buf := [2]byte{b0, c.Memory[memAddr(pc+1)]}
		instr, err = isa.Decode2(buf)
		c.Reg[PC] = pc + 2
	}

	if err == nil {
		err = c.dispatch(instr, n)
	}
	if err != nil {
		c.enterInterrupt(VecIllegal)
	}
	c.tickTimer()
}

// dispatch runs the one decoded instruction. A non-nil return always
// means the ILLEGAL vector should fire; every other fault an instruction
// could hit (bad literal shift counts, stack underflow) is, per spec,
// arithmetic that simply produces a value rather than failing.
func (c *CPU) dispatch(instr isa.Instruction, n Neighbors) error {
	switch instr.Op {
	case isa.Move:
		return c.execMove(instr, n)

	case isa.Push:
		c.execPush(instr.Src)
	case isa.Pop:
		if !c.execPop(instr.Src) {
			return isa.ErrIllegalInstruction
		}

	case isa.Add:
		c.execAdd(instr.Src, instr.Dst.Value)
	case isa.Cmp:
		c.execCmp(instr.Src, instr.Dst.Value)
	case isa.Sub:
		c.execSub(instr.Src, instr.Dst.Value)
	case isa.Lsl:
		c.execLsl(instr.Src, instr.Dst.Value)
	case isa.Lsr:
		c.execLsr(instr.Src, instr.Dst.Value)
	case isa.And:
		c.execAnd(instr.Src, instr.Dst.Value)
	case isa.Or:
		c.execOr(instr.Src, instr.Dst.Value)
	case isa.Xor:
		c.execXor(instr.Src, instr.Dst.Value)
	case isa.Not:
		c.execNot(instr.Src)

	case isa.Bcc, isa.Bcs, isa.Beq, isa.Bne, isa.Ble, isa.Bge, isa.Bra:
		c.execBranch(instr.Op, instr.Src)
	case isa.Bsr:
		c.execBsr(instr.Src)

	case isa.Jcc, isa.Jcs, isa.Jeq, isa.Jne, isa.Jle, isa.Jge, isa.Jmp:
		c.execJump(instr.Op, instr.Src)
	case isa.Jsr:
		c.execJsr(instr.Src)
	case isa.Rts:
		c.execRts()

	case isa.Trap:
		return c.execTrap(instr.Src, n)
	case isa.Rte:
		c.execRte()

	default:
		return isa.ErrIllegalInstruction
	}
	return nil
}

// execMove implements move/move.h/move.l. For a register destination the
// variant decides whether the write ORs its byte in (h/l) or overwrites
// the full word (plain move); every memory destination,
// local or cross-CPU, always takes exactly one byte, matching the
// reference implementation's behavior even for a full-word source.
func (c *CPU) execMove(instr isa.Instruction, n Neighbors) error {
	step := uint16(2)
	if instr.Move != isa.MoveFull {
		step = 1
	}

	var word uint16  // only meaningful for a full-word register destination
	var b byte        // the byte actually stored everywhere else

	switch instr.Src.Mode {
	case isa.ModeImmediate:
		switch instr.Move {
		case isa.MoveHigh:
			b = byte(instr.Src.Value >> 8)
		case isa.MoveLow:
			b = byte(instr.Src.Value)
		default:
			word = instr.Src.Value
			b = byte(word)
		}

	case isa.ModeAbsolute:
		src, err := resolveNeighbor(byte(instr.Src.Value>>8), n)
		if err != nil {
			return err
		}
		b = src.Memory[memAddr(instr.Src.Value)]
		word = uint16(b)

	default:
		raw := c.readStep(instr.Src, step)
		switch instr.Move {
		case isa.MoveHigh:
			b = byte(raw >> 8)
		case isa.MoveLow:
			b = byte(raw)
		default:
			word = raw
			b = byte(word)
		}
	}

	switch instr.Dst.Mode {
	case isa.ModeAbsolute:
		dst, err := resolveNeighbor(byte(instr.Dst.Value>>8), n)
		if err != nil {
			return err
		}
		dst.Memory[memAddr(instr.Dst.Value)] = b

	case isa.ModeRegister:
		if instr.Move == isa.MoveFull {
			c.setReg(instr.Dst.Value, word)
		} else {
			c.setReg(instr.Dst.Value, c.reg(instr.Dst.Value)|uint16(b))
		}

	case isa.ModePreDec:
		c.setReg(instr.Dst.Value, c.reg(instr.Dst.Value)-step)
		c.Memory[memAddr(c.reg(instr.Dst.Value))] = b

	case isa.ModeIndirect:
		c.Memory[memAddr(c.reg(instr.Dst.Value))] = b

	case isa.ModePostInc:
		c.Memory[memAddr(c.reg(instr.Dst.Value))] = b
		c.setReg(instr.Dst.Value, c.reg(instr.Dst.Value)+step)

	default: // Immediate destination is never legal.
		return isa.ErrIllegalInstruction
	}

	c.Flags.Reset()
	c.Flags.SetC(false)
	if instr.Move == isa.MoveFull {
		c.Flags.SetN(word&0x8000 != 0)
		c.Flags.SetZ(word == 0)
	} else {
		c.Flags.SetN(b&0x80 != 0)
		c.Flags.SetZ(b == 0)
	}
	return nil
}
