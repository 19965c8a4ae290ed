package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type renderer interface {
	Render(state entity.GameState) error
}

// ErrorHandler receives rejected moves. The player is asked again afterwards.
type ErrorHandler func(player *Player, err error)

// Match plays two players against each other until the game is over.
type Match struct {
	logger *slog.Logger

	player1  *Player
	player2  *Player
	renderer renderer
	onError  ErrorHandler
}

func NewMatch(logger *slog.Logger, player1, player2 *Player, renderer renderer, onError ErrorHandler) (*Match, error) {
	if err := ValidatePlayers(player1, player2); err != nil {
		return nil, err
	}

	return &Match{
		logger:   logger.With("component", "match"),
		player1:  player1,
		player2:  player2,
		renderer: renderer,
		onError:  onError,
	}, nil
}

// Play validates the starting position and alternates the players from it.
// Without an error handler an invalid move ends the match.
func (that *Match) Play(ctx context.Context, startingMark entity.Mark, grid entity.Grid) (entity.GameState, error) {
	log := that.logger.With("method", "play")

	state, err := entity.NewValidatedGameState(grid, startingMark)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to start match: %w", err)
	}

	for {
		if that.renderer != nil {
			if err = that.renderer.Render(state); err != nil {
				return state, fmt.Errorf("failed to render: %w", err)
			}
		}

		if state.GameOver() {
			winner, _ := state.Winner()
			log.Info("match finished", "winner", winner, "tie", state.Tie())

			return state, nil
		}

		if err = ctx.Err(); err != nil {
			return state, fmt.Errorf("match interrupted: %w", err)
		}

		player := that.playerFor(state.CurrentMark())

		move, err := player.MakeMove(state)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) && that.onError != nil {
				log.Debug("move rejected", "player", player.Name, "error", err)
				that.onError(player, err)
				continue
			}

			return state, fmt.Errorf("%s failed to move: %w", player.Name, err)
		}

		log.Debug("move made", "player", player.Name, "mark", move.Mark(), "position", move.Position())
		state = move.After()
	}
}

func (that *Match) playerFor(mark entity.Mark) *Player {
	if that.player1.Mark == mark {
		return that.player1
	}

	return that.player2
}
