package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

func TestPatternTable(t *testing.T) {
	t.Run("Encodes and decodes generated patterns", func(t *testing.T) {
		// Given: the patterns of a 5x5 board with a winning length of 4
		patterns, err := pattern.Generate(5, 4)
		require.NoError(t, err)

		// When: storing them as a table and decoding it again
		table := NewPatternTable(5, 4, patterns)
		decoded, err := table.Decode()

		// Then: the same placeholder cells come back in the same order
		require.NoError(t, err)
		require.Len(t, decoded, len(patterns))
		for i := range patterns {
			assert.Equal(t, patterns[i].Cells(), decoded[i].Cells())
		}
		assert.Equal(t, "patterns:5x4", table.Key())
	})

	t.Run("Rejects masks of the wrong length", func(t *testing.T) {
		table := &PatternTable{Size: 4, WinningLen: 3, Patterns: []string{"???......"}}

		_, err := table.Decode()

		assert.Error(t, err)
	})

	t.Run("Rejects corrupted masks", func(t *testing.T) {
		table := &PatternTable{Size: 3, WinningLen: 3, Patterns: []string{"??X......"}}

		_, err := table.Decode()

		assert.ErrorIs(t, err, apperror.ErrInvalidWinningPattern)
	})
}
