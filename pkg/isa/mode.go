package isa

// AddrMode identifies one of the six addressing modes an operand can use.
type AddrMode uint8

const (
	ModeRegister  AddrMode = 0b000
	ModePreDec    AddrMode = 0b001
	ModeIndirect  AddrMode = 0b010
	ModePostInc   AddrMode = 0b011
	ModeImmediate AddrMode = 0b100
	ModeAbsolute  AddrMode = 0b101
)

// Valid reports whether the 3-bit field decodes to a defined addressing
// mode. Values 0b110 and 0b111 are never assigned.
func (m AddrMode) Valid() bool {
	return m <= ModeAbsolute
}

func (m AddrMode) String() string {
	switch m {
	case ModeRegister:
		return "register"
	case ModePreDec:
		return "pre-decrement"
	case ModeIndirect:
		return "indirect"
	case ModePostInc:
		return "post-increment"
	case ModeImmediate:
		return "immediate"
	case ModeAbsolute:
		return "absolute"
	default:
		return "invalid"
	}
}

// MoveVariant selects which half of a word a move.h/move.l instruction
// touches. Plain move (no suffix) always uses Full.
type MoveVariant uint8

const (
	MoveLow  MoveVariant = 0b01
	MoveHigh MoveVariant = 0b10
	MoveFull MoveVariant = 0b11
)

func (v MoveVariant) String() string {
	switch v {
	case MoveLow:
		return "l"
	case MoveHigh:
		return "h"
	default:
		return ""
	}
}
