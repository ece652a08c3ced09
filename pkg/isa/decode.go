package isa

import "fmt"

// DecodeOpcode extracts the 5-bit opcode from the first byte of any
// instruction, move included. The CPU executive calls this first to learn
// whether it needs to fetch 2 or 4 bytes before decoding further.
func DecodeOpcode(b0 byte) OpCode {
	return OpCode((b0 & 0b11111000) >> 3)
}

// Decode2 decodes a non-move instruction (arity 0, 1, or 2) from its
// 2-byte encoding.
func Decode2(data [2]byte) (Instruction, error) {
	op := DecodeOpcode(data[0])
	if !op.Valid() || op == Move {
		return Instruction{}, fmt.Errorf("%w: opcode %#02x", ErrIllegalInstruction, op)
	}

	switch Catalog[op].Arity {
	case 0:
		return Instruction{Op: op, Len: 2}, nil

	case 1:
		mode := AddrMode(data[0] & 0b111)
		if !mode.Valid() {
			return Instruction{}, fmt.Errorf("%w: mode %#03b", ErrIllegalInstruction, mode)
		}
		return Instruction{
			Op:  op,
			Src: Operand{Mode: mode, Value: uint16(data[1])},
			Len: 2,
		}, nil

	default: // arity 2
		dstReg := uint16(data[0] & 0b111)
		mode := AddrMode((data[1] & 0b11100000) >> 5)
		if !mode.Valid() {
			return Instruction{}, fmt.Errorf("%w: mode %#03b", ErrIllegalInstruction, mode)
		}
		return Instruction{
			Op:  op,
			Dst: Operand{Mode: ModeRegister, Value: dstReg},
			Src: Operand{Mode: mode, Value: uint16(data[1] & 0b00011111)},
			Len: 2,
		}, nil
	}
}

// Decode4 decodes a move instruction from its 4-byte encoding. The
// asymmetric swap between the 3-bit and 16-bit fields — which operand
// lands where depends on the source's addressing mode — is resolved here
// so the returned Instruction always carries semantically correct Src/Dst
// operands, mirroring EncodeMove.
func Decode4(data [4]byte) (Instruction, error) {
	op := DecodeOpcode(data[0])
	if op != Move {
		return Instruction{}, fmt.Errorf("%w: opcode %#02x is not move", ErrIllegalInstruction, op)
	}

	variant := MoveVariant((data[0] & 0b110) >> 1)
	srcMode := AddrMode((data[0]&1)<<2 | (data[1]&0b11000000)>>6)
	if !srcMode.Valid() {
		return Instruction{}, fmt.Errorf("%w: src mode %#03b", ErrIllegalInstruction, srcMode)
	}
	dstMode := AddrMode((data[1] & 0b00111000) >> 3)
	if !dstMode.Valid() {
		return Instruction{}, fmt.Errorf("%w: dst mode %#03b", ErrIllegalInstruction, dstMode)
	}

	small := uint16(data[1] & 0b111)
	full := uint16(data[2])<<8 | uint16(data[3])

	var src, dst Operand
	if srcMode == ModeImmediate || srcMode == ModeAbsolute {
		dst = Operand{Mode: dstMode, Value: small}
		src = Operand{Mode: srcMode, Value: full}
	} else {
		src = Operand{Mode: srcMode, Value: small}
		dst = Operand{Mode: dstMode, Value: full}
	}

	return Instruction{Op: Move, Move: variant, Src: src, Dst: dst, Len: 4}, nil
}
