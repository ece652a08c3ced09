// Package view renders a running tournament as a terminal UI: a 16x16
// grid of colored cells plus a status line, ticking the game forward on
// each animation frame.
package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/coreforge/corewar/pkg/arena"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// model is the bubbletea model wrapping one running game.
type model struct {
	game      *arena.Game
	maxCycles int
	result    *arena.Result
	debug     bool
}

// New returns a tea.Program ready to run a tournament to completion.
func New(g *arena.Game, maxCycles int, debug bool) *tea.Program {
	return tea.NewProgram(model{game: g, maxCycles: maxCycles, debug: debug})
}

// Result extracts the outcome from the tea.Model returned by (*tea.Program).Run,
// once the program has quit.
func Result(m tea.Model) (arena.Result, bool) {
	mm, ok := m.(model)
	if !ok || mm.result == nil {
		return arena.Result{}, false
	}
	return *mm.result, true
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tickMsg:
		if m.result != nil {
			return m, nil
		}
		m.game.Tick()
		if color, ok := m.game.Winner(); ok {
			p1, p2 := m.game.Counts()
			r := arena.Result{
				Cycles:       m.game.Cycle,
				Player1Count: p1,
				Player2Count: p2,
				Winner:       winnerName(m.game, color),
			}
			m.result = &r
			return m, tea.Quit
		}
		if m.game.Cycle >= m.maxCycles {
			p1, p2 := m.game.Counts()
			r := arena.Result{Cycles: m.game.Cycle, Player1Count: p1, Player2Count: p2, Winner: tieBreak(p1, p2)}
			m.result = &r
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

func winnerName(g *arena.Game, color uint16) string {
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

var (
	borderStyle = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	rows := make([]string, 0, arena.Height)
	for y := 0; y < arena.Height; y++ {
		var row string
		for x := 0; x < arena.Width; x++ {
			color := m.game.Board[y][x].Color()
			row += lipgloss.NewStyle().
				Foreground(rgb555(color)).
				Render("■")
		}
		rows = append(rows, row)
	}
	board := borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	p1, p2 := m.game.Counts()
	status := statusStyle.Render(fmt.Sprintf("cycle %d/%d  player1=%d  player2=%d", m.game.Cycle, m.maxCycles, p1, p2))

	view := lipgloss.JoinVertical(lipgloss.Left, board, status)
	if m.debug {
		view = lipgloss.JoinVertical(lipgloss.Left, view, spew.Sdump(m.game.Board[0][0]))
	}
	return view
}

// rgb555 expands a 5-5-5 color signature to a lipgloss truecolor string.
func rgb555(color uint16) lipgloss.Color {
	r := (color >> 10) & 0x1F
	g := (color >> 5) & 0x1F
	b := color & 0x1F
	expand := func(v uint16) uint8 { return uint8(v<<3 | v>>2) }
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", expand(r), expand(g), expand(b)))
}
