// Package asm turns assembly source text into the packed instruction
// stream the CPU executes, and back again for disassembly.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/coreforge/corewar/pkg/isa"
)

// Assemble reads one instruction per line from r and returns the
// concatenated big-endian instruction stream. Empty lines and lines
// starting with '#' are comments. A failure on any line is returned
// wrapped with its 1-based line number; the caller (typically a CLI)
// adds the source path on top.
func Assemble(r io.Reader) ([]byte, error) {
	var out []byte
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bytes, err := assembleLine(line)
		if err != nil {
			return nil, fmt.Errorf("%d: %w", lineNo, err)
		}
		out = append(out, bytes...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// assembleLine encodes one non-comment, non-empty source line.
func assembleLine(line string) ([]byte, error) {
	fields := strings.SplitN(line, " ", 2)
	head := strings.ToLower(fields[0])

	mnemonic, variant, isMove := strings.Cut(head, ".")

	var rest string
	if len(fields) == 2 {
		rest = strings.ToLower(fields[1])
	}
	operands := splitOperands(rest)

	if mnemonic == "move" || isMove {
		return assembleMove(mnemonic, variant, isMove, operands)
	}

	op, ok := isa.Lookup(mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", isa.ErrUnknownMnemonic, mnemonic)
	}
	arity := isa.Catalog[op].Arity
	if len(operands) != arity {
		return nil, fmt.Errorf("%w: %q wants %d operand(s), got %d", isa.ErrArityMismatch, mnemonic, arity, len(operands))
	}

	switch arity {
	case 0:
		word := isa.EncodeZero(op)
		return word[:], nil

	case 1:
		src, err := isa.ParseOperand(operands[0])
		if err != nil {
			return nil, err
		}
		word := isa.EncodeOne(op, src)
		return word[:], nil

	default: // 2
		src, err := isa.ParseOperand(operands[0])
		if err != nil {
			return nil, err
		}
		dst, err := isa.ParseOperand(operands[1])
		if err != nil {
			return nil, err
		}
		if dst.Mode != isa.ModeRegister {
			return nil, fmt.Errorf("%w: %q destination must be a register", isa.ErrMalformedOperand, operands[1])
		}
		word := isa.EncodeTwo(op, src, dst.Value)
		return word[:], nil
	}
}

// assembleMove handles move/move.h/move.l, the one arity-2 mnemonic with
// its own 4-byte encoding.
func assembleMove(mnemonic, variantSuffix string, isMove bool, operands []string) ([]byte, error) {
	if mnemonic != "move" {
		return nil, fmt.Errorf("%w: %q", isa.ErrUnknownMnemonic, mnemonic)
	}
	if len(operands) != 2 {
		return nil, fmt.Errorf("%w: %q wants 2 operands, got %d", isa.ErrArityMismatch, mnemonic, len(operands))
	}

	variant := isa.MoveFull
	if isMove {
		switch variantSuffix {
		case "h":
			variant = isa.MoveHigh
		case "l":
			variant = isa.MoveLow
		default:
			return nil, fmt.Errorf("%w: %q: unknown move suffix", isa.ErrMalformedOperand, variantSuffix)
		}
	}

	src, err := isa.ParseOperand(operands[0])
	if err != nil {
		return nil, err
	}
	dst, err := isa.ParseOperand(operands[1])
	if err != nil {
		return nil, err
	}
	word := isa.EncodeMove(variant, src, dst)
	return word[:], nil
}

// splitOperands tokenizes the operand portion of a line on commas and/or
// whitespace, matching both "add r0 r1" and "move r0, @0100" source
// styles.
func splitOperands(rest string) []string {
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return fields
}
