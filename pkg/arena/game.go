// Package arena runs the tournament: a 16x16 grid of CPUs ticked in
// round-robin order until one color owns every cell or the cycle budget
// runs out.
package arena

import (
	"fmt"
	"math/rand"

	"github.com/coreforge/corewar/pkg/cpu"
)

const (
	Width  = 16
	Height = 16
)

// Board is the fixed grid of combatants. Index as Board[y][x], matching
// the row-major iteration order Tick uses.
type Board [Height][Width]*cpu.CPU

// Game owns the board and sequences execution across it. Tick hands each
// CPU a cpu.Neighbors view (neighborsFor) so a CPU can reach an adjacent
// cell during its own turn without holding a reference to the grid itself.
type Game struct {
	Board   Board
	Cycle   int
	Player1 uint16
	Player2 uint16
}

// New returns a Game with every cell holding a freshly zeroed, unloaded
// CPU at its grid position.
func New() *Game {
	g := &Game{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.Board[y][x] = cpu.New(x, y)
		}
	}
	return g
}

// At implements cpu.Neighbors: it resolves a relative offset from the
// calling CPU's own grid position. Since Neighbors.At only receives the
// delta, not the caller, Game wraps each lookup in a per-CPU view — see
// neighborsFor.
type neighborsFor struct {
	g    *Game
	x, y int
}

func (n neighborsFor) At(dx, dy int) (*cpu.CPU, error) {
	x, y := n.x+dx, n.y+dy
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return nil, cpu.ErrOutOfBounds
	}
	return n.g.Board[y][x], nil
}

// Seed loads two player programs into random, distinct grid cells with
// random 5-5-5 colors, and returns their positions as [x,y] pairs.
func (g *Game) Seed(p1, p2 []byte) (pos1, pos2 [2]int) {
	x1, y1 := rand.Intn(Width), rand.Intn(Height)
	x2, y2 := rand.Intn(Width), rand.Intn(Height)
	for x2 == x1 && y2 == y1 {
		x2, y2 = rand.Intn(Width), rand.Intn(Height)
	}

	g.Player1 = randomColor()
	g.Player2 = randomColor()

	c1 := g.Board[y1][x1]
	c1.Load(p1)
	c1.SetColor(g.Player1)

	c2 := g.Board[y2][x2]
	c2.Load(p2)
	c2.SetColor(g.Player2)

	return [2]int{x1, y1}, [2]int{x2, y2}
}

func randomColor() uint16 {
	red := uint16(rand.Intn(32))
	green := uint16(rand.Intn(32))
	blue := uint16(rand.Intn(32))
	return red<<10 | green<<5 | blue
}

// Tick runs one round-robin pass: every cell is executed exactly once, in
// row-major order, so a write made earlier in the pass is visible to a
// cell executed later in the same pass.
func (g *Game) Tick() {
	g.Cycle++
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.Board[y][x].Execute(neighborsFor{g: g, x: x, y: y})
		}
	}
}

// Winner reports the shared color once every cell on the board agrees,
// and false otherwise.
func (g *Game) Winner() (uint16, bool) {
	first := g.Board[0][0].Color()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.Board[y][x].Color() != first {
				return 0, false
			}
		}
	}
	return first, true
}

// Counts returns the number of cells currently owned by each player's
// color signature.
func (g *Game) Counts() (p1, p2 int) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			switch g.Board[y][x].Color() {
			case g.Player1:
				p1++
			case g.Player2:
				p2++
			}
		}
	}
	return p1, p2
}

// Result summarizes a completed or cycle-capped run.
type Result struct {
	Cycles       int
	Player1Count int
	Player2Count int
	Winner       string // "player1", "player2", "tie", or "" if cut short
}

// Run ticks the game until maxCycles is reached or a unique winning color
// emerges, then reports the outcome.
func (g *Game) Run(maxCycles int) Result {
	for g.Cycle < maxCycles {
		g.Tick()
		if color, ok := g.Winner(); ok {
			p1, p2 := g.Counts()
			return Result{
				Cycles:       g.Cycle,
				Player1Count: p1,
				Player2Count: p2,
				Winner:       winnerLabel(g, color),
			}
		}
	}
	p1, p2 := g.Counts()
	return Result{
		Cycles:       g.Cycle,
		Player1Count: p1,
		Player2Count: p2,
		Winner:       tieBreak(p1, p2),
	}
}

func winnerLabel(g *Game, color uint16) string {
	if color == g.Player1 {
		return "player1"
	}
	return "player2"
}

func tieBreak(p1, p2 int) string {
	switch {
	case p1 > p2:
		return "player1"
	case p2 > p1:
		return "player2"
	default:
		return "tie"
	}
}

func (r Result) String() string {
	return fmt.Sprintf("cycles=%d player1=%d player2=%d winner=%s", r.Cycles, r.Player1Count, r.Player2Count, r.Winner)
}
