package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

// PatternTable is the stored form of the winning patterns of one board
// configuration.
type PatternTable struct {
	Size       int      `json:"size" yaml:"size"`
	WinningLen int      `json:"winning_len" yaml:"winning_len"`
	Patterns   []string `json:"patterns" yaml:"patterns"`
}

func NewPatternTable(size, winningLen int, patterns []pattern.Pattern) *PatternTable {
	masks := make([]string, 0, len(patterns))
	for _, p := range patterns {
		masks = append(masks, p.String())
	}

	return &PatternTable{
		Size:       size,
		WinningLen: winningLen,
		Patterns:   masks,
	}
}

func TableKey(size, winningLen int) string {
	return fmt.Sprintf("patterns:%dx%d", size, winningLen)
}

func (that *PatternTable) Key() string {
	return TableKey(that.Size, that.WinningLen)
}

// Decode parses every stored mask and checks it spans the board.
func (that *PatternTable) Decode() ([]pattern.Pattern, error) {
	patterns := make([]pattern.Pattern, 0, len(that.Patterns))
	for _, mask := range that.Patterns {
		p, err := pattern.Parse(mask)
		if err != nil {
			return nil, fmt.Errorf("failed to decode table %s: %w", that.Key(), err)
		}

		if p.Len() != that.Size*that.Size {
			return nil, fmt.Errorf("failed to decode table %s: mask %q does not span the board", that.Key(), mask)
		}

		patterns = append(patterns, p)
	}

	return patterns, nil
}
