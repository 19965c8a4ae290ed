package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

// GameState is a grid plus the mark that moved first. Everything else is
// derived from those two.
type GameState struct {
	grid         Grid
	startingMark Mark

	winner       Mark
	winningCells []int
}

func NewGameState(grid Grid, startingMark Mark) (GameState, error) {
	if !startingMark.IsValid() {
		return GameState{}, fmt.Errorf("%w: unknown starting mark %q", apperror.ErrInvalidGameState, startingMark)
	}

	patterns, err := pattern.For(grid.Size(), grid.WinningLen())
	if err != nil {
		return GameState{}, fmt.Errorf("failed to load winning patterns: %w", err)
	}

	state := GameState{grid: grid, startingMark: startingMark}
	state.winner, state.winningCells = findWinner(grid, patterns)

	return state, nil
}

// findWinner checks patterns in table order and, per pattern, marks in Marks
// order; the first full placeholder match is reported.
func findWinner(grid Grid, patterns []pattern.Pattern) (Mark, []int) {
	for _, p := range patterns {
		for _, mark := range Marks {
			if p.Covers(func(index int) bool { return grid.Cell(index) == mark.cell() }) {
				return mark, p.Cells()
			}
		}
	}

	return "", nil
}

// lineOf returns the cells of the first pattern mark fills, or nil.
func lineOf(grid Grid, patterns []pattern.Pattern, mark Mark) []int {
	for _, p := range patterns {
		if p.Covers(func(index int) bool { return grid.Cell(index) == mark.cell() }) {
			return p.Cells()
		}
	}

	return nil
}

func (that GameState) Grid() Grid {
	return that.grid
}

func (that GameState) StartingMark() Mark {
	return that.startingMark
}

// CurrentMark is the mark to play next, assuming marks alternated from the
// starting mark.
func (that GameState) CurrentMark() Mark {
	if that.grid.CrossCount() == that.grid.NaughtCount() {
		return that.startingMark
	}
	return that.startingMark.Other()
}

func (that GameState) Winner() (Mark, bool) {
	return that.winner, that.winner != ""
}

// WinningCells returns the cell indices of the winning line, or nil.
func (that GameState) WinningCells() []int {
	return slices.Clone(that.winningCells)
}

func (that GameState) Tie() bool {
	return that.grid.EmptyCount() == 0 && that.winner == ""
}

func (that GameState) GameOver() bool {
	return that.winner != "" || that.Tie()
}

func (that GameState) GameNotStarted() bool {
	return that.grid.EmptyCount() == len(that.grid.Cells())
}

// MakeMoveTo places the current mark at index and returns the transition.
func (that GameState) MakeMoveTo(index int) (Move, error) {
	if index < 0 || index >= len(that.grid.Cells()) {
		return Move{}, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if that.grid.Cell(index) != EmptyCell {
		return Move{}, fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	mark := that.CurrentMark()

	after, err := NewGameState(that.grid.place(mark, index), that.startingMark)
	if err != nil {
		return Move{}, fmt.Errorf("failed to apply move: %w", err)
	}

	return Move{
		mark:     mark,
		position: index,
		before:   that,
		after:    after,
	}, nil
}

// PossibleMoves lists a move for every empty cell in increasing index order,
// or nothing once the game is over.
func (that GameState) PossibleMoves() []Move {
	if that.GameOver() {
		return []Move{}
	}

	moves := make([]Move, 0, that.grid.EmptyCount())
	for index := range len(that.grid.Cells()) {
		if that.grid.Cell(index) != EmptyCell {
			continue
		}

		move, err := that.MakeMoveTo(index)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves
}
