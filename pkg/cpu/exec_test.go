package cpu

import (
	"testing"

	"github.com/coreforge/corewar/pkg/isa"
)

// fakeGrid is a tiny Neighbors stub for tests that only need one or two
// cells wired together.
type fakeGrid struct {
	cells map[[2]int]*CPU
}

func (g fakeGrid) At(dx, dy int) (*CPU, error) {
	c, ok := g.cells[[2]int{dx, dy}]
	if !ok {
		return nil, ErrOutOfBounds
	}
	return c, nil
}

func TestExecuteAdd(t *testing.T) {
	c := New(0, 0)
	copy(c.Memory[:], []byte{0x19, 0x00})
	c.Reg[0] = 1
	c.Reg[1] = 1

	c.Execute(fakeGrid{})

	if c.Reg[1] != 2 {
		t.Errorf("R1 = %d, want 2", c.Reg[1])
	}
	if c.Flags.C() || c.Flags.Z() || c.Flags.N() {
		t.Errorf("flags = %03b, want 000", c.Flags)
	}
	if c.Reg[PC] != 2 {
		t.Errorf("PC = %d, want 2", c.Reg[PC])
	}
}

func TestExecuteCmp(t *testing.T) {
	c := New(0, 0)
	copy(c.Memory[:], []byte{0x21, 0x00})
	c.Reg[0] = 3
	c.Reg[1] = 2

	c.Execute(fakeGrid{})

	if c.Reg[1] != 2 {
		t.Errorf("R1 = %d, want unchanged 2", c.Reg[1])
	}
	if !c.Flags.C() || c.Flags.Z() || !c.Flags.N() {
		t.Errorf("flags C=%v Z=%v N=%v, want true false true", c.Flags.C(), c.Flags.Z(), c.Flags.N())
	}
}

func TestExecuteLsr(t *testing.T) {
	c := New(0, 0)
	copy(c.Memory[:], []byte{0x39, 0x00})
	c.Reg[0] = 1
	c.Reg[1] = 2

	c.Execute(fakeGrid{})

	if c.Reg[1] != 1 {
		t.Errorf("R1 = %d, want 1", c.Reg[1])
	}
	if !c.Flags.C() {
		t.Error("C flag not set")
	}
}

func TestPushThenPop(t *testing.T) {
	c := New(0, 0)
	bytes := isa.EncodeOne(isa.Push, isa.Operand{Mode: isa.ModeRegister, Value: 0})
	copy(c.Memory[:], bytes[:])
	c.Reg[0] = 150
	c.Reg[SP] = 256

	c.Execute(fakeGrid{})

	if c.Memory[254] != 0 || c.Memory[255] != 150 {
		t.Fatalf("memory[254:256] = %x %x, want 00 96", c.Memory[254], c.Memory[255])
	}

	bytes = isa.EncodeOne(isa.Pop, isa.Operand{Mode: isa.ModeRegister, Value: 0})
	copy(c.Memory[2:], bytes[:])
	c.Reg[PC] = 2
	c.Memory[254], c.Memory[255] = 0xff, 0xff
	c.Reg[SP] = 254

	c.Execute(fakeGrid{})

	if c.Reg[0] != 0xffff {
		t.Errorf("R0 = %#04x, want 0xffff", c.Reg[0])
	}
	if c.Reg[SP] != 256 {
		t.Errorf("SP = %d, want 256", c.Reg[SP])
	}
}

func TestExecuteJmp(t *testing.T) {
	c := New(0, 0)
	copy(c.Memory[:], []byte{0xd0, 0x00})
	c.Reg[0] = 10

	c.Execute(fakeGrid{})

	if c.Reg[PC] != 10 {
		t.Errorf("PC = %d, want 10", c.Reg[PC])
	}
}

func TestExecuteBranchCarryClear(t *testing.T) {
	for _, tc := range []struct {
		carry  bool
		wantPC uint16
	}{
		{carry: false, wantPC: 12},
		{carry: true, wantPC: 2},
	} {
		c := New(0, 0)
		copy(c.Memory[:], []byte{0x60, 0x00})
		c.Reg[0] = 10
		c.Flags.SetC(tc.carry)

		c.Execute(fakeGrid{})

		if c.Reg[PC] != tc.wantPC {
			t.Errorf("carry=%v: PC = %d, want %d", tc.carry, c.Reg[PC], tc.wantPC)
		}
	}
}

func TestExecuteMoveAcrossGrid(t *testing.T) {
	attacker := New(0, 0)
	neighbor := New(1, 0)
	neighbor.Reg[3] = 0x4242
	neighbor.Flags.SetC(true)

	bytes := isa.EncodeMove(isa.MoveFull,
		isa.Operand{Mode: isa.ModeRegister, Value: 0},
		isa.Operand{Mode: isa.ModeAbsolute, Value: 0x0100},
	)
	copy(attacker.Memory[:], bytes[:])
	attacker.Reg[0] = 0xffff

	grid := fakeGrid{cells: map[[2]int]*CPU{{1, 0}: neighbor}}
	attacker.Execute(grid)

	if neighbor.Memory[0] != 0xff {
		t.Errorf("neighbor.memory[0] = %#02x, want 0xff", neighbor.Memory[0])
	}
	if neighbor.Memory[1] != 0x00 {
		t.Errorf("neighbor.memory[1] = %#02x, want untouched 0x00", neighbor.Memory[1])
	}
	if neighbor.Reg[3] != 0x4242 {
		t.Errorf("neighbor register clobbered: R3 = %#04x", neighbor.Reg[3])
	}
	if !neighbor.Flags.C() {
		t.Error("neighbor flags clobbered: C should remain set")
	}
}

func TestTrapOutOfBoundsRaisesIllegalLocally(t *testing.T) {
	c := New(0, 0)
	bytes := isa.EncodeOne(isa.Trap, isa.Operand{Mode: isa.ModeImmediate, Value: 0xff})
	copy(c.Memory[:], bytes[:])
	c.Memory[VecIllegal] = 0x20

	c.Execute(fakeGrid{}) // empty grid: every delta is out of bounds

	if c.Reg[PC] != 0x20 {
		t.Errorf("PC = %#04x, want ILLEGAL vector target 0x20", c.Reg[PC])
	}
}

func TestTimerFiresOnceAtTargetTick(t *testing.T) {
	c := New(0, 0)
	// jmp #10 at PC jumps to itself, so the same cheap instruction runs every tick.
	bytes := isa.EncodeOne(isa.Jmp, isa.Operand{Mode: isa.ModeImmediate, Value: 0x10})
	copy(c.Memory[0x10:], bytes[:])
	c.Reg[PC] = 0x10

	c.Memory[TimerDivisor] = 2
	c.Memory[TimerTarget] = 3
	c.Memory[TimerMode] = TimerOneShot
	c.Memory[VecTimer] = 0x20

	total := 2 * 3
	for i := 0; i < total-1; i++ {
		c.Execute(fakeGrid{})
		if c.Memory[TimerMode] == TimerDisabled {
			t.Fatalf("timer fired early at tick %d", i+1)
		}
	}
	c.Execute(fakeGrid{})
	if c.Memory[TimerMode] != TimerDisabled {
		t.Fatalf("timer did not fire by tick %d", total)
	}
}
