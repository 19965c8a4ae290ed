// Package console prints boards and pattern tables for the command line.
package console

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const emptyCell = "."

// Renderer writes the board after every ply.
type Renderer struct {
	out io.Writer

	cross   lipgloss.Style
	naught  lipgloss.Style
	empty   lipgloss.Style
	winning lipgloss.Style
	outcome lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)

	return &Renderer{
		out:     out,
		cross:   r.NewStyle().Foreground(lipgloss.Color("4")),
		naught:  r.NewStyle().Foreground(lipgloss.Color("1")),
		empty:   r.NewStyle().Foreground(lipgloss.Color("245")),
		winning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		outcome: r.NewStyle().Bold(true),
	}
}

func (that *Renderer) Render(state entity.GameState) error {
	if _, err := fmt.Fprintf(that.out, "%s\n%s\n\n", that.Board(state), that.outcome.Render(Outcome(state))); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Board draws the grid row by row, highlighting the winning line.
func (that *Renderer) Board(state entity.GameState) string {
	grid := state.Grid()
	size := grid.Size()
	winning := state.WinningCells()

	rows := make([]string, 0, size)
	for row := range size {
		cells := make([]string, 0, size)
		for col := range size {
			index := row*size + col
			cells = append(cells, " "+that.cell(grid.Cell(index), slices.Contains(winning, index))+" ")
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	separator := "\n" + strings.Repeat("---+", size-1) + "---\n"

	return strings.Join(rows, separator)
}

func (that *Renderer) cell(value byte, winning bool) string {
	switch {
	case value == entity.EmptyCell:
		return that.empty.Render(emptyCell)
	case winning:
		return that.winning.Render(string(value))
	case string(value) == string(entity.MarkCross):
		return that.cross.Render(string(value))
	default:
		return that.naught.Render(string(value))
	}
}

// Outcome describes the state in one line.
func Outcome(state entity.GameState) string {
	if winner, ok := state.Winner(); ok {
		return fmt.Sprintf("%s wins", winner)
	}

	if state.Tie() {
		return "tie"
	}

	return fmt.Sprintf("%s to move", state.CurrentMark())
}
