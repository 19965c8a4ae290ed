package service

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestRandomStrategy_NextMove(t *testing.T) {
	t.Run("Only picks empty cells", func(t *testing.T) {
		// Given: a board with three free cells
		state := newState(t, 3, "XOXOXO   ", 3, entity.MarkCross)
		strategy := NewSeededRandomStrategy(7)

		for range 20 {
			// When: asking for a move
			move, err := strategy.NextMove(state)

			// Then: it lands on a free cell
			require.NoError(t, err)
			assert.True(t, slices.Contains([]int{6, 7, 8}, move.Position()), "position %d", move.Position())
		}
	})

	t.Run("Same seed gives the same choices", func(t *testing.T) {
		state := newState(t, 4, "                ", 3, entity.MarkCross)
		first := NewSeededRandomStrategy(42)
		second := NewSeededRandomStrategy(42)

		for range 10 {
			a, err := first.NextMove(state)
			require.NoError(t, err)
			b, err := second.NextMove(state)
			require.NoError(t, err)

			assert.Equal(t, a.Position(), b.Position())
		}
	})

	t.Run("Returns error if no moves are left", func(t *testing.T) {
		state := newState(t, 3, "XXXOO    ", 3, entity.MarkCross)

		_, err := NewSeededRandomStrategy(1).NextMove(state)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestFirstFreeStrategy_NextMove(t *testing.T) {
	state := newState(t, 3, "XO       ", 3, entity.MarkCross)

	move, err := FirstFreeStrategy{}.NextMove(state)

	require.NoError(t, err)
	assert.Equal(t, 2, move.Position())
	assert.Equal(t, entity.MarkCross, move.Mark())
}
