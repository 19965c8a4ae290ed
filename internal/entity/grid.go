package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Grid is an immutable board snapshot. Cells are stored row-major as 'X', 'O'
// or ' '.
type Grid struct {
	size       int
	cells      string
	winningLen int
}

func NewGrid(size int, cells string, winningLen int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: size %d must be positive", apperror.ErrInvalidGrid, size)
	}

	if winningLen < 1 || winningLen > size {
		return Grid{}, fmt.Errorf("%w: winning length %d must be within 1..%d", apperror.ErrInvalidGrid, winningLen, size)
	}

	if len(cells) != size*size {
		return Grid{}, fmt.Errorf("%w: must contain %d cells, got %d", apperror.ErrInvalidGrid, size*size, len(cells))
	}

	for i := range len(cells) {
		switch cells[i] {
		case MarkCross.cell(), MarkNaught.cell(), EmptyCell:
		default:
			return Grid{}, fmt.Errorf("%w: illegal cell %q at %d", apperror.ErrInvalidGrid, cells[i], i)
		}
	}

	return Grid{size: size, cells: cells, winningLen: winningLen}, nil
}

// EmptyGrid returns a board with no marks placed.
func EmptyGrid(size, winningLen int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: size %d must be positive", apperror.ErrInvalidGrid, size)
	}

	return NewGrid(size, strings.Repeat(string(EmptyCell), size*size), winningLen)
}

func (that Grid) Size() int {
	return that.size
}

func (that Grid) WinningLen() int {
	return that.winningLen
}

func (that Grid) Cells() string {
	return that.cells
}

// Cell returns the content of the cell at a row-major index.
func (that Grid) Cell(index int) byte {
	return that.cells[index]
}

func (that Grid) Count(mark Mark) int {
	if !mark.IsValid() {
		return 0
	}
	return strings.Count(that.cells, string(mark))
}

func (that Grid) CrossCount() int {
	return that.Count(MarkCross)
}

func (that Grid) NaughtCount() int {
	return that.Count(MarkNaught)
}

func (that Grid) EmptyCount() int {
	return strings.Count(that.cells, string(EmptyCell))
}

func (that Grid) place(mark Mark, index int) Grid {
	cells := []byte(that.cells)
	cells[index] = mark.cell()

	return Grid{size: that.size, cells: string(cells), winningLen: that.winningLen}
}
