package isa

// Instruction is the decoded form of one fetched instruction: enough to
// both execute it and, for move, know which half-word variant it is.
type Instruction struct {
	Op    OpCode
	Move  MoveVariant // meaningful only when Op == Move
	Dst   Operand     // arity-2 destination register, or move destination
	Src   Operand     // arity-1/arity-2 source, or move source
	Len   int         // 2 or 4, number of bytes consumed
}

// EncodeZero builds the 2-byte encoding of a no-operand instruction.
func EncodeZero(op OpCode) [2]byte {
	word := uint16(op) << 11
	return [2]byte{byte(word >> 8), byte(word)}
}

// EncodeOne builds the 2-byte encoding of a single-operand instruction.
// The mode occupies the low 3 bits of byte 0; the full 8-bit value
// occupies byte 1, mirroring the reference assembler's layout exactly.
func EncodeOne(op OpCode, src Operand) [2]byte {
	word := uint16(op)<<11 | uint16(src.Mode)<<8 | (src.Value & 0x00FF)
	return [2]byte{byte(word >> 8), byte(word)}
}

// EncodeTwo builds the 2-byte encoding of a two-operand instruction. The
// destination is always a register; its index occupies the low 3 bits of
// byte 0, and the source mode/value occupy byte 1 (3 bits mode, 5 bits
// value).
func EncodeTwo(op OpCode, src Operand, dstReg uint16) [2]byte {
	word := uint16(op)<<11 | (dstReg&0x7)<<8 | uint16(src.Mode)<<5 | (src.Value & 0x1F)
	return [2]byte{byte(word >> 8), byte(word)}
}

// EncodeMove builds the 4-byte encoding of a move (or move.h/move.l)
// instruction. When the source is immediate or absolute, the destination's
// small field and the source's full 16-bit field swap positions relative
// to the usual layout — this asymmetry comes straight from the reference
// compiler and both sides of isa must agree on it.
func EncodeMove(variant MoveVariant, src, dst Operand) [4]byte {
	word := uint32(Move)<<27 | uint32(variant)<<25
	word |= uint32(src.Mode) << 22
	word |= uint32(dst.Mode) << 19

	if src.Mode == ModeImmediate || src.Mode == ModeAbsolute {
		word |= uint32(dst.Value&0x7) << 16
		word |= uint32(src.Value)
	} else {
		word |= uint32(src.Value&0x7) << 16
		word |= uint32(dst.Value)
	}

	return [4]byte{
		byte(word >> 24),
		byte(word >> 16),
		byte(word >> 8),
		byte(word),
	}
}
