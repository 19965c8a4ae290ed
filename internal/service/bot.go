package service

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RandomStrategy picks uniformly among the available moves.
type RandomStrategy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomStrategy(rnd *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rnd: rnd}
}

func NewSeededRandomStrategy(seed int64) *RandomStrategy {
	return NewRandomStrategy(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
}

func (that *RandomStrategy) NextMove(state entity.GameState) (entity.Move, error) {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	chosen := that.rnd.Intn(len(moves))
	that.mu.Unlock()

	return moves[chosen], nil
}

// FirstFreeStrategy always takes the lowest empty cell.
type FirstFreeStrategy struct{}

func (FirstFreeStrategy) NextMove(state entity.GameState) (entity.Move, error) {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return moves[0], nil
}
