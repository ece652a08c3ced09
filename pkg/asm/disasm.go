package asm

import (
	"fmt"

	"github.com/coreforge/corewar/pkg/isa"
)

// Disassemble renders one decoded instruction back to source text, the
// inverse of assembleLine for a single instruction. It does not reproduce
// comments or blank lines; callers working over a whole binary drive this
// in a loop keyed by isa.Instruction.Len.
func Disassemble(instr isa.Instruction) string {
	info := isa.Catalog[instr.Op]
	mnemonic := info.Mnemonic
	if instr.Op == isa.Move {
		if instr.Move != isa.MoveFull {
			mnemonic = "move." + instr.Move.String()
		}
		return fmt.Sprintf("%s %s, %s", mnemonic, instr.Src.Format(4), instr.Dst.Format(4))
	}

	switch info.Arity {
	case 0:
		return mnemonic
	case 1:
		return fmt.Sprintf("%s %s", mnemonic, instr.Src.Format(2))
	default:
		return fmt.Sprintf("%s %s, %s", mnemonic, instr.Src.Format(2), instr.Dst.Format(2))
	}
}
