package isa

import "testing"

func TestLookupRoundTrip(t *testing.T) {
	for op := OpCode(0); op < OpCodeCount; op++ {
		mnemonic := Catalog[op].Mnemonic
		got, ok := Lookup(mnemonic)
		if !ok {
			t.Fatalf("mnemonic %q not found for opcode %d", mnemonic, op)
		}
		if got != op {
			t.Errorf("Lookup(%q) = %d, want %d", mnemonic, got, op)
		}
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		tok     string
		mode    AddrMode
		value   uint16
		wantErr bool
	}{
		{"r0", ModeRegister, 0, false},
		{"r7", ModeRegister, 7, false},
		{"r8", 0, 0, true},
		{"-(r3)", ModePreDec, 3, false},
		{"(r2)", ModeIndirect, 2, false},
		{"(r2)+", ModePostInc, 2, false},
		{"#00ff", ModeImmediate, 0x00ff, false},
		{"@0a12", ModeAbsolute, 0x0a12, false},
		{"#zz", 0, 0, true},
		{"", 0, 0, true},
		{"x1", 0, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseOperand(tt.tok)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOperand(%q) expected error, got %+v", tt.tok, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseOperand(%q) unexpected error: %v", tt.tok, err)
		}
		if got.Mode != tt.mode || got.Value != tt.value {
			t.Errorf("ParseOperand(%q) = %+v, want {%v %v}", tt.tok, got, tt.mode, tt.value)
		}
	}
}

func TestEncodeDecodeTwoOperand(t *testing.T) {
	// add r0, r1 : memory = 0x19, 0x00 (worked scenario from the add test case)
	got := EncodeTwo(Add, Operand{Mode: ModeRegister, Value: 0}, 1)
	want := [2]byte{0x19, 0x00}
	if got != want {
		t.Fatalf("EncodeTwo(add) = %x, want %x", got, want)
	}

	instr, err := Decode2(got)
	if err != nil {
		t.Fatalf("Decode2: %v", err)
	}
	if instr.Op != Add || instr.Dst.Value != 1 || instr.Src.Mode != ModeRegister || instr.Src.Value != 0 {
		t.Errorf("Decode2(add) = %+v", instr)
	}
}

func TestEncodeDecodeOneOperand(t *testing.T) {
	// jmp r0 : memory = 0xd0, 0x00
	got := EncodeOne(Jmp, Operand{Mode: ModeRegister, Value: 0})
	want := [2]byte{0xd0, 0x00}
	if got != want {
		t.Fatalf("EncodeOne(jmp) = %x, want %x", got, want)
	}

	instr, err := Decode2(got)
	if err != nil {
		t.Fatalf("Decode2: %v", err)
	}
	if instr.Op != Jmp || instr.Src.Mode != ModeRegister || instr.Src.Value != 0 {
		t.Errorf("Decode2(jmp) = %+v", instr)
	}
}

func TestEncodeDecodeMoveRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		variant MoveVariant
		src     Operand
		dst     Operand
	}{
		{"reg to reg", MoveFull, Operand{Mode: ModeRegister, Value: 2}, Operand{Mode: ModeRegister, Value: 3}},
		{"immediate to register", MoveFull, Operand{Mode: ModeImmediate, Value: 0x1234}, Operand{Mode: ModeRegister, Value: 5}},
		{"absolute to indirect", MoveFull, Operand{Mode: ModeAbsolute, Value: 0xfa10}, Operand{Mode: ModeIndirect, Value: 1}},
		{"post-inc to pre-dec, high half", MoveHigh, Operand{Mode: ModePostInc, Value: 4}, Operand{Mode: ModePreDec, Value: 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bytes := EncodeMove(c.variant, c.src, c.dst)
			instr, err := Decode4(bytes)
			if err != nil {
				t.Fatalf("Decode4: %v", err)
			}
			if instr.Op != Move || instr.Move != c.variant {
				t.Errorf("move/variant = %v/%v, want %v/%v", instr.Op, instr.Move, Move, c.variant)
			}
			if instr.Src != c.src {
				t.Errorf("Src = %+v, want %+v", instr.Src, c.src)
			}
			if instr.Dst != c.dst {
				t.Errorf("Dst = %+v, want %+v", instr.Dst, c.dst)
			}
		})
	}
}

func TestDecodeIllegalOpcode(t *testing.T) {
	// opcode 0x1F (31) is unassigned.
	data := [2]byte{0b11111000, 0x00}
	if _, err := Decode2(data); err == nil {
		t.Fatal("expected ErrIllegalInstruction for unassigned opcode")
	}
}
