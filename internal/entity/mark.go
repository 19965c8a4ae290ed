package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mark string

const (
	MarkCross  Mark = "X"
	MarkNaught Mark = "O"

	EmptyCell = ' '
)

// Marks lists both marks in the order winners are looked up.
var Marks = [...]Mark{MarkCross, MarkNaught}

var otherMark = map[Mark]Mark{
	MarkCross:  MarkNaught,
	MarkNaught: MarkCross,
}

func ParseMark(value string) (Mark, error) {
	mark := Mark(value)
	if !mark.IsValid() {
		return "", fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidPlayer, value)
	}

	return mark, nil
}

func (that Mark) IsValid() bool {
	_, ok := otherMark[that]
	return ok
}

// Other returns the opponent's mark, or "" for an invalid mark.
func (that Mark) Other() Mark {
	return otherMark[that]
}

func (that Mark) cell() byte {
	return that[0]
}
