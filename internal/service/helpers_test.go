package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// scriptedStrategy plays the given cells in order, like a human typing them.
type scriptedStrategy struct {
	cells []int
}

func (that *scriptedStrategy) NextMove(state entity.GameState) (entity.Move, error) {
	if len(that.cells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	cell := that.cells[0]
	that.cells = that.cells[1:]

	return state.MakeMoveTo(cell)
}

type recordingRenderer struct {
	boards []string
}

func (that *recordingRenderer) Render(state entity.GameState) error {
	that.boards = append(that.boards, state.Grid().Cells())
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newState(t *testing.T, size int, cells string, winningLen int, starting entity.Mark) entity.GameState {
	t.Helper()

	grid, err := entity.NewGrid(size, cells, winningLen)
	require.NoError(t, err)

	state, err := entity.NewGameState(grid, starting)
	require.NoError(t, err)

	return state
}

func emptyGrid(t *testing.T, size, winningLen int) entity.Grid {
	t.Helper()

	grid, err := entity.EmptyGrid(size, winningLen)
	require.NoError(t, err)

	return grid
}
