package asm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreforge/corewar/pkg/asm"
	"github.com/coreforge/corewar/pkg/isa"
)

func TestAssembleAddScenario(t *testing.T) {
	out, err := asm.Assemble(strings.NewReader("add r0, r1\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x19, 0x00}, out)
}

func TestAssembleSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\n  \nrts\n"
	out, err := asm.Assemble(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe0, 0x00}, out)
}

func TestAssembleMoveAcrossGrid(t *testing.T) {
	out, err := asm.Assemble(strings.NewReader("move r0, @0100\n"))
	require.NoError(t, err)
	require.Len(t, out, 4)

	instr, err := isa.Decode4([4]byte(out))
	require.NoError(t, err)
	assert.Equal(t, isa.ModeRegister, instr.Src.Mode)
	assert.Equal(t, uint16(0), instr.Src.Value)
	assert.Equal(t, isa.ModeAbsolute, instr.Dst.Mode)
	assert.Equal(t, uint16(0x0100), instr.Dst.Value)
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	_, err := asm.Assemble(strings.NewReader("frobnicate r0\n"))
	assert.ErrorIs(t, err, isa.ErrUnknownMnemonic)
}

func TestAssembleArityMismatch(t *testing.T) {
	_, err := asm.Assemble(strings.NewReader("add r0\n"))
	assert.ErrorIs(t, err, isa.ErrArityMismatch)
}

func TestAssembleMalformedOperand(t *testing.T) {
	_, err := asm.Assemble(strings.NewReader("jmp zz\n"))
	assert.ErrorIs(t, err, isa.ErrMalformedOperand)
}

func TestEncodeDecodeDisassembleRoundTrip(t *testing.T) {
	cases := []string{
		"add r0, r1",
		"jmp r0",
		"bcc r0",
		"push r0",
		"trap #ff",
		"rts",
	}
	for _, src := range cases {
		out, err := asm.Assemble(strings.NewReader(src + "\n"))
		require.NoError(t, err, src)

		var instr isa.Instruction
		if len(out) == 2 {
			instr, err = isa.Decode2([2]byte(out))
		} else {
			instr, err = isa.Decode4([4]byte(out))
		}
		require.NoError(t, err, src)
		assert.Equal(t, src, asm.Disassemble(instr), "round-trip mismatch")
	}
}
