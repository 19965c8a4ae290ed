package service

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Strategy picks the next move for whoever is to play in state.
type Strategy interface {
	NextMove(state entity.GameState) (entity.Move, error)
}

type Player struct {
	Name     string
	Mark     entity.Mark
	Strategy Strategy
}

func NewPlayer(name string, mark entity.Mark, strategy Strategy) *Player {
	return &Player{
		Name:     name,
		Mark:     mark,
		Strategy: strategy,
	}
}

// ValidatePlayers checks that two players can face each other.
func ValidatePlayers(player1, player2 *Player) error {
	for _, player := range []*Player{player1, player2} {
		if player == nil {
			return fmt.Errorf("%w: player is missing", apperror.ErrInvalidPlayer)
		}

		if strings.TrimSpace(player.Name) == "" {
			return fmt.Errorf("%w: player name is blank", apperror.ErrInvalidPlayer)
		}

		if !player.Mark.IsValid() {
			return fmt.Errorf("%w: %s has unknown mark %q", apperror.ErrInvalidPlayer, player.Name, player.Mark)
		}

		if player.Strategy == nil {
			return fmt.Errorf("%w: %s has no strategy", apperror.ErrInvalidPlayer, player.Name)
		}
	}

	if player1.Mark == player2.Mark {
		return fmt.Errorf("%w: both players use %s", apperror.ErrInvalidPlayer, player1.Mark)
	}

	return nil
}

// MakeMove asks the strategy for a move on behalf of the player.
func (that *Player) MakeMove(state entity.GameState) (entity.Move, error) {
	if state.GameOver() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if current := state.CurrentMark(); current != that.Mark {
		return entity.Move{}, fmt.Errorf("%w: %s plays %s but %s is to move", apperror.ErrNotYourTurn, that.Name, that.Mark, current)
	}

	move, err := that.Strategy.NextMove(state)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%s failed to choose a move: %w", that.Name, err)
	}

	if move.Mark() != that.Mark {
		return entity.Move{}, fmt.Errorf("%w: %s was handed a move for %q", apperror.ErrInvalidMove, that.Name, move.Mark())
	}

	before := move.Before()
	if before.Grid().Cells() != state.Grid().Cells() || before.Grid().WinningLen() != state.Grid().WinningLen() ||
		before.StartingMark() != state.StartingMark() {
		return entity.Move{}, fmt.Errorf("%w: %s was handed a move from another position", apperror.ErrInvalidMove, that.Name)
	}

	return move, nil
}
