package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func mustState(t *testing.T, size int, cells string, winningLen int, starting Mark) GameState {
	t.Helper()

	grid, err := NewGrid(size, cells, winningLen)
	require.NoError(t, err)

	state, err := NewGameState(grid, starting)
	require.NoError(t, err)

	return state
}

func TestGameState_Winner(t *testing.T) {
	t.Run("Returns X when X fills the top row", func(t *testing.T) {
		// Given: a 3x3 board where X holds the top row
		state := mustState(t, 3, "XXX      ", 3, MarkCross)

		// When: determining the winner
		winner, ok := state.Winner()

		// Then: X wins on cells 0, 1 and 2 and the game is over
		require.True(t, ok)
		assert.Equal(t, MarkCross, winner)
		assert.Equal(t, []int{0, 1, 2}, state.WinningCells())
		assert.True(t, state.GameOver())
		assert.False(t, state.Tie())
	})

	t.Run("Returns O on a column", func(t *testing.T) {
		// Given: O holds the middle column
		state := mustState(t, 3, "XOX O XOX", 3, MarkCross)

		// When: determining the winner
		winner, ok := state.Winner()

		// Then: O wins on cells 1, 4 and 7
		require.True(t, ok)
		assert.Equal(t, MarkNaught, winner)
		assert.Equal(t, []int{1, 4, 7}, state.WinningCells())
	})

	t.Run("Finds an offset diagonal on a larger board", func(t *testing.T) {
		// Given: a 5x5 board with a winning length of 4 and X on the
		// diagonal starting at row 1, column 0
		cells := []byte(strings.Repeat(" ", 25))
		for _, index := range []int{5, 11, 17, 23} {
			cells[index] = 'X'
		}
		for _, index := range []int{0, 1, 2} {
			cells[index] = 'O'
		}
		state := mustState(t, 5, string(cells), 4, MarkCross)

		// When: determining the winner
		winner, ok := state.Winner()

		// Then: X wins along that diagonal
		require.True(t, ok)
		assert.Equal(t, MarkCross, winner)
		assert.Equal(t, []int{5, 11, 17, 23}, state.WinningCells())
	})

	t.Run("Three in a row is not enough when four are required", func(t *testing.T) {
		state := mustState(t, 5, "XXX  OO                  ", 4, MarkCross)

		_, ok := state.Winner()

		assert.False(t, ok)
		assert.Nil(t, state.WinningCells())
		assert.False(t, state.GameOver())
	})

	t.Run("Reports the first match when both marks have a line", func(t *testing.T) {
		// Given: a hand-built board where O holds the top row and X the bottom
		state := mustState(t, 3, "OOO   XXX", 3, MarkCross)

		// When: determining the winner
		winner, _ := state.Winner()

		// Then: the first pattern in table order decides
		assert.Equal(t, MarkNaught, winner)
		assert.Equal(t, []int{0, 1, 2}, state.WinningCells())
	})

	t.Run("A full board with a line is a win, not a tie", func(t *testing.T) {
		// Given: alternating marks, which puts X on the main diagonal
		state := mustState(t, 3, "XOXOXOXOX", 3, MarkCross)

		winner, ok := state.Winner()

		require.True(t, ok)
		assert.Equal(t, MarkCross, winner)
		assert.Equal(t, []int{0, 4, 8}, state.WinningCells())
		assert.False(t, state.Tie())
	})
}

func TestGameState_Tie(t *testing.T) {
	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a drawn 3x3 board
		state := mustState(t, 3, "XOXXOOOXX", 3, MarkCross)

		// Then: tie, no winner, game over
		_, ok := state.Winner()
		assert.False(t, ok)
		assert.True(t, state.Tie())
		assert.True(t, state.GameOver())
		assert.Empty(t, state.PossibleMoves())
	})

	t.Run("Board with empty cells is not a tie", func(t *testing.T) {
		state := mustState(t, 3, "XOXXOOOX ", 3, MarkCross)

		assert.False(t, state.Tie())
		assert.False(t, state.GameOver())
	})
}

func TestGameState_CurrentMark(t *testing.T) {
	t.Run("Starting mark plays on an empty board", func(t *testing.T) {
		// Given: an empty 3x3 board started by O
		state := mustState(t, 3, "         ", 3, MarkNaught)

		// Then: O is to play and every cell is a legal move
		assert.Equal(t, MarkNaught, state.CurrentMark())
		assert.True(t, state.GameNotStarted())
		assert.Len(t, state.PossibleMoves(), 9)
	})

	t.Run("Other mark plays after the first move", func(t *testing.T) {
		state := mustState(t, 3, "    X    ", 3, MarkCross)

		assert.Equal(t, MarkNaught, state.CurrentMark())
		assert.False(t, state.GameNotStarted())
	})

	t.Run("Unknown starting mark is rejected", func(t *testing.T) {
		grid, err := EmptyGrid(3, 3)
		require.NoError(t, err)

		_, err = NewGameState(grid, Mark("Z"))

		assert.ErrorIs(t, err, apperror.ErrInvalidGameState)
	})
}

func TestGameState_MakeMoveTo(t *testing.T) {
	t.Run("Places the current mark and keeps the starting mark", func(t *testing.T) {
		// Given: a board where O is to play
		state := mustState(t, 3, "X        ", 3, MarkCross)

		// When: O moves to the centre
		move, err := state.MakeMoveTo(4)
		require.NoError(t, err)

		// Then: only cell 4 changed, to O
		assert.Equal(t, MarkNaught, move.Mark())
		assert.Equal(t, 4, move.Position())
		assert.Equal(t, "X   O    ", move.After().Grid().Cells())
		assert.Equal(t, MarkCross, move.After().StartingMark())
		assert.Equal(t, state, move.Before())
		assert.Equal(t, MarkCross, move.After().CurrentMark())
	})

	t.Run("Round trip changes exactly one cell", func(t *testing.T) {
		state := mustState(t, 4, "XO  X  O        ", 3, MarkCross)

		for p := range 16 {
			if state.Grid().Cell(p) != EmptyCell {
				continue
			}

			move, err := state.MakeMoveTo(p)
			require.NoError(t, err)

			before := state.Grid().Cells()
			after := move.After().Grid().Cells()
			for i := range 16 {
				if i == p {
					assert.Equal(t, string(state.CurrentMark()), string(after[i]))
				} else {
					assert.Equal(t, before[i], after[i])
				}
			}
		}
	})

	t.Run("Occupied cell is an invalid move", func(t *testing.T) {
		// Given: a board with X in the corner
		state := mustState(t, 3, "X        ", 3, MarkCross)

		// When: O tries the same cell
		_, err := state.MakeMoveTo(0)

		// Then: ErrInvalidMove and the state is untouched
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, "X        ", state.Grid().Cells())
	})

	t.Run("Out of range cells are invalid moves", func(t *testing.T) {
		state := mustState(t, 3, "         ", 3, MarkCross)

		_, err := state.MakeMoveTo(9)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		_, err = state.MakeMoveTo(-1)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		assert.Equal(t, "         ", state.Grid().Cells())
	})
}

func TestGameState_PossibleMoves(t *testing.T) {
	t.Run("Lists empty cells in increasing order", func(t *testing.T) {
		state := mustState(t, 3, "X O  X O ", 3, MarkCross)

		moves := state.PossibleMoves()

		positions := make([]int, 0, len(moves))
		for _, move := range moves {
			positions = append(positions, move.Position())
			assert.Equal(t, MarkCross, move.Mark())
		}
		assert.Equal(t, []int{1, 3, 4, 6, 8}, positions)
	})

	t.Run("No moves after a win", func(t *testing.T) {
		state := mustState(t, 3, "XXXOO    ", 3, MarkCross)

		assert.Empty(t, state.PossibleMoves())
	})

	t.Run("Playing out a game always ends", func(t *testing.T) {
		// Given: an empty 4x4 board with a winning length of 3
		state := mustState(t, 4, strings.Repeat(" ", 16), 3, MarkCross)

		// When: always taking the first legal move
		plies := 0
		for !state.GameOver() {
			moves := state.PossibleMoves()
			require.NotEmpty(t, moves)
			state = moves[0].After()
			plies++
		}

		// Then: the game ended within the board size and the state is consistent
		assert.LessOrEqual(t, plies, 16)
		require.NoError(t, ValidateGameState(state))
	})
}
