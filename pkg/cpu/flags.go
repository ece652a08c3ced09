package cpu

// Flags packs the three condition codes the ALU and control unit read and
// write: Carry, Zero, Negative. Every instruction that affects flags
// resets the word first, then sets exactly the bits its result implies —
// flags never carry over from the previous instruction.
type Flags uint8

const (
	FlagC Flags = 1 << 0
	FlagZ Flags = 1 << 1
	FlagN Flags = 1 << 2
)

// Reset clears all three condition codes.
func (f *Flags) Reset() {
	*f = 0
}

func (f *Flags) SetC(v bool) { f.set(FlagC, v) }
func (f *Flags) SetZ(v bool) { f.set(FlagZ, v) }
func (f *Flags) SetN(v bool) { f.set(FlagN, v) }

func (f *Flags) set(bit Flags, v bool) {
	if v {
		*f |= bit
	} else {
		*f &^= bit
	}
}

func (f Flags) C() bool { return f&FlagC != 0 }
func (f Flags) Z() bool { return f&FlagZ != 0 }
func (f Flags) N() bool { return f&FlagN != 0 }
