// Package isa holds the canonical instruction-set tables shared by the
// assembler and the CPU: mnemonic/opcode mapping, addressing-mode bits, and
// the byte-exact encoder/decoder pair that must be perfect inverses of one
// another.
package isa

import "errors"

// Assembler-surfaced errors (see spec §7).
var (
	ErrMalformedOperand = errors.New("malformed operand")
	ErrUnknownMnemonic  = errors.New("unknown mnemonic")
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrBadLiteral       = errors.New("bad literal")
)

// ErrIllegalInstruction is raised by the decoder on an unknown opcode or an
// invalid addressing-mode field. The CPU executive routes it to the
// ILLEGAL interrupt vector; it never needs a file/line prefix.
var ErrIllegalInstruction = errors.New("illegal instruction")
