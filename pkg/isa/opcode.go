package isa

// OpCode identifies one of the 31 mnemonics the machine understands. The
// numeric value is the opcode as it appears in the top five bits of the
// first instruction byte.
type OpCode uint8

const (
	Move OpCode = iota
	Push
	Pop
	Add
	Cmp
	Sub
	Lsl
	Lsr
	And
	Or
	Xor
	Not
	Bcc
	Bcs
	Beq
	Bne
	Ble
	Bge
	Bra
	Bsr
	Jcc
	Jcs
	Jeq
	Jne
	Jle
	Jge
	Jmp
	Jsr
	Rts
	Trap
	Rte

	OpCodeCount
)

// Info describes one catalog entry: its mnemonic text and the number of
// operands the assembler and decoder must expect for it.
type Info struct {
	Mnemonic string
	Arity    int
}

// Catalog maps every OpCode to its Info, populated once at init time
// rather than scattered across string-keyed maps.
var Catalog [OpCodeCount]Info

// mnemonics maps lower-case mnemonic text back to its OpCode. Built
// alongside Catalog in init.
var mnemonics = map[string]OpCode{}

func init() {
	entries := []struct {
		op       OpCode
		mnemonic string
		arity    int
	}{
		{Move, "move", 2},
		{Push, "push", 1},
		{Pop, "pop", 1},
		{Add, "add", 2},
		{Cmp, "cmp", 2},
		{Sub, "sub", 2},
		{Lsl, "lsl", 2},
		{Lsr, "lsr", 2},
		{And, "and", 2},
		{Or, "or", 2},
		{Xor, "xor", 2},
		{Not, "not", 1},
		{Bcc, "bcc", 1},
		{Bcs, "bcs", 1},
		{Beq, "beq", 1},
		{Bne, "bne", 1},
		{Ble, "ble", 1},
		{Bge, "bge", 1},
		{Bra, "bra", 1},
		{Bsr, "bsr", 1},
		{Jcc, "jcc", 1},
		{Jcs, "jcs", 1},
		{Jeq, "jeq", 1},
		{Jne, "jne", 1},
		{Jle, "jle", 1},
		{Jge, "jge", 1},
		{Jmp, "jmp", 1},
		{Jsr, "jsr", 1},
		{Rts, "rts", 0},
		{Trap, "trap", 1},
		{Rte, "rte", 0},
	}
	for _, e := range entries {
		Catalog[e.op] = Info{Mnemonic: e.mnemonic, Arity: e.arity}
		mnemonics[e.mnemonic] = e.op
	}
}

// Lookup resolves a lower-case mnemonic (without any ".h"/".l" move suffix)
// to its OpCode.
func Lookup(mnemonic string) (OpCode, bool) {
	op, ok := mnemonics[mnemonic]
	return op, ok
}

// Valid reports whether op is within the defined catalog range. The top
// five bits of an instruction byte can encode values 0-31; only 0-30 name
// real instructions.
func (op OpCode) Valid() bool {
	return op < OpCodeCount
}

func (op OpCode) String() string {
	if !op.Valid() {
		return "invalid"
	}
	return Catalog[op].Mnemonic
}
