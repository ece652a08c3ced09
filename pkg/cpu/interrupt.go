package cpu

import "github.com/coreforge/corewar/pkg/isa"

// enterInterrupt pushes PC then the flags word and jumps to the vector's
// target address. It is called explicitly by the executive rather than
// modeled as a caught exception (see design notes on StepResult).
func (c *CPU) enterInterrupt(vector uint8) {
	c.pushValue(c.Reg[PC])
	c.Reg[PC] = uint16(c.Memory[vector])
	c.pushValue(uint16(c.Flags))
}

// execRte restores flags then PC, the inverse order of enterInterrupt's
// pushes (flags was pushed last, so it is popped first).
func (c *CPU) execRte() {
	flagsWord := c.popValue()
	c.Flags = Flags(flagsWord)
	c.Reg[PC] = c.popValue()
}

// execTrap resolves its operand as a packed neighbor delta and fires
// TRAP on that CPU directly — this is the cross-CPU attack primitive.
// Any resolution failure (grid edge) is reported to the caller, which
// routes it to this CPU's own ILLEGAL vector.
func (c *CPU) execTrap(src isa.Operand, n Neighbors) error {
	addr := c.read(src)
	target, err := resolveNeighbor(uint8(addr), n)
	if err != nil {
		return err
	}
	target.enterInterrupt(VecTrap)
	return nil
}

// tickTimer runs once after every executed instruction. A repeating
// timer's accumulator resets on fire so it refires every divisor*target
// ticks — the source implementation never resets it, which left repeat
// mode firing only once; the spec's timer-invariant property requires
// the corrected behavior.
func (c *CPU) tickTimer() {
	mode := c.Memory[TimerMode]
	if mode != TimerOneShot && mode != TimerRepeat {
		return
	}

	c.cycle++
	if c.cycle != uint16(c.Memory[TimerDivisor]) {
		return
	}
	c.cycle = 0
	c.Memory[TimerAccum]++

	if c.Memory[TimerAccum] != c.Memory[TimerTarget] {
		return
	}
	c.Memory[TimerAccum] = 0
	if mode == TimerOneShot {
		c.Memory[TimerMode] = TimerDisabled
	}
	c.enterInterrupt(VecTimer)
}
