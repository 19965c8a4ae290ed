// Package pattern generates the winning patterns of a size x size board where
// winningLen marks in a row, column or diagonal win.
package pattern

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	Placeholder = '?' // must hold the winning mark
	Blank       = '-' // on the line but outside the run
	DontCare    = '.' // off the line
)

// Pattern is a full-board mask of size*size cells.
type Pattern struct {
	mask  string
	cells []int
}

// Parse rebuilds a pattern from its mask, e.g. a stored table entry.
func Parse(mask string) (Pattern, error) {
	cells := make([]int, 0)
	for i := range len(mask) {
		switch mask[i] {
		case Placeholder:
			cells = append(cells, i)
		case Blank, DontCare:
		default:
			return Pattern{}, fmt.Errorf("%w: unexpected %q at %d in %q", apperror.ErrInvalidWinningPattern, mask[i], i, mask)
		}
	}

	if len(cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: no placeholder cells in %q", apperror.ErrInvalidWinningPattern, mask)
	}

	return Pattern{mask: mask, cells: cells}, nil
}

func (that Pattern) String() string {
	return that.mask
}

// Len is the number of board cells the mask spans.
func (that Pattern) Len() int {
	return len(that.mask)
}

// Cells returns the placeholder indices in increasing order.
func (that Pattern) Cells() []int {
	return slices.Clone(that.cells)
}

// Covers reports whether check holds for every placeholder index.
func (that Pattern) Covers(check func(index int) bool) bool {
	for _, index := range that.cells {
		if !check(index) {
			return false
		}
	}

	return true
}

// Generate superimposes every win vector onto every position vector of the
// same length. Patterns selecting the same placeholder cells are kept once, in
// the order they are first produced.
func Generate(size, winningLen int) ([]Pattern, error) {
	if err := validate(size, winningLen); err != nil {
		return nil, err
	}

	winVectors := make(map[int][]WinVector)
	seen := make(map[string]struct{})
	patterns := make([]Pattern, 0)

	for _, positions := range PositionVectors(size, winningLen) {
		length := len(positions)
		if _, ok := winVectors[length]; !ok {
			winVectors[length] = WinVectors(length, winningLen)
		}

		for _, win := range winVectors[length] {
			pattern := superimpose(size, positions, win)

			key := fmt.Sprint(pattern.cells)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			patterns = append(patterns, pattern)
		}
	}

	return patterns, nil
}

// Count is the number of distinct patterns Generate yields for the pair.
func Count(size, winningLen int) (int, error) {
	if err := validate(size, winningLen); err != nil {
		return 0, err
	}

	if winningLen == 1 {
		// every line collapses to single cells
		return size * size, nil
	}

	placements := size - winningLen + 1

	return 2*size*placements + 2*placements*placements, nil
}

func superimpose(size int, positions Vector, win WinVector) Pattern {
	mask := []byte(strings.Repeat(string(DontCare), size*size))
	cells := make([]int, 0, len(positions))

	for i, position := range positions {
		index := position.Index(size)
		if win[i] {
			mask[index] = Placeholder
			cells = append(cells, index)
		} else {
			mask[index] = Blank
		}
	}

	slices.Sort(cells)

	return Pattern{mask: string(mask), cells: cells}
}

func validate(size, winningLen int) error {
	switch {
	case size <= 0:
		return fmt.Errorf("%w: size %d must be positive", apperror.ErrInvalidWinningPattern, size)
	case winningLen <= 0:
		return fmt.Errorf("%w: winning length %d must be positive", apperror.ErrInvalidWinningPattern, winningLen)
	case winningLen > size:
		return fmt.Errorf("%w: winning length %d exceeds size %d", apperror.ErrInvalidWinningPattern, winningLen, size)
	}

	return nil
}
