package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestNewGrid(t *testing.T) {
	t.Run("Counts always add up to the board area", func(t *testing.T) {
		for _, cells := range []string{"         ", "XXX      ", "XOXXOOOXX", "O X O X  "} {
			grid, err := NewGrid(3, cells, 3)
			require.NoError(t, err)

			assert.Equal(t, 9, grid.CrossCount()+grid.NaughtCount()+grid.EmptyCount())
		}
	})

	t.Run("Counts each mark", func(t *testing.T) {
		grid, err := NewGrid(4, "XOX O  X   O    ", 2)
		require.NoError(t, err)

		assert.Equal(t, 3, grid.CrossCount())
		assert.Equal(t, 3, grid.NaughtCount())
		assert.Equal(t, 10, grid.EmptyCount())
		assert.Equal(t, 3, grid.Count(MarkCross))
		assert.Equal(t, 0, grid.Count(Mark("Z")))
		assert.Equal(t, byte('O'), grid.Cell(4))
	})

	t.Run("Rejects a wrong cell count", func(t *testing.T) {
		_, err := NewGrid(3, "XXX", 3)
		assert.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})

	t.Run("Rejects illegal characters", func(t *testing.T) {
		_, err := NewGrid(3, "XXA      ", 3)
		assert.ErrorIs(t, err, apperror.ErrInvalidGrid)

		_, err = NewGrid(3, "xo       ", 3)
		assert.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})

	t.Run("Rejects impossible dimensions", func(t *testing.T) {
		_, err := NewGrid(0, "", 1)
		require.ErrorIs(t, err, apperror.ErrInvalidGrid)

		_, err = NewGrid(3, strings.Repeat(" ", 9), 4)
		require.ErrorIs(t, err, apperror.ErrInvalidGrid)

		_, err = NewGrid(3, strings.Repeat(" ", 9), 0)
		require.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})
}

func TestEmptyGrid(t *testing.T) {
	grid, err := EmptyGrid(5, 4)
	require.NoError(t, err)

	assert.Equal(t, 5, grid.Size())
	assert.Equal(t, 4, grid.WinningLen())
	assert.Equal(t, 25, grid.EmptyCount())

	_, err = EmptyGrid(-1, 1)
	assert.ErrorIs(t, err, apperror.ErrInvalidGrid)
}

func TestMark_Other(t *testing.T) {
	assert.Equal(t, MarkNaught, MarkCross.Other())
	assert.Equal(t, MarkCross, MarkNaught.Other())
	assert.Equal(t, MarkCross, MarkCross.Other().Other())
	assert.Equal(t, Mark(""), Mark("Z").Other())
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("O")
	require.NoError(t, err)
	assert.Equal(t, MarkNaught, mark)

	_, err = ParseMark(" ")
	assert.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}
