package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

// ValidateGameState checks that a state could have been reached by
// alternating legal play from its starting mark.
func ValidateGameState(state GameState) error {
	starting := state.StartingMark()
	if !starting.IsValid() {
		return fmt.Errorf("%w: unknown starting mark %q", apperror.ErrInvalidGameState, starting)
	}

	first := state.Grid().Count(starting)
	second := state.Grid().Count(starting.Other())

	if diff := first - second; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %s has %d marks and %s has %d, %s started",
			apperror.ErrInvalidGameState, starting, first, starting.Other(), second, starting)
	}

	winner, ok := state.Winner()
	if !ok {
		return nil
	}

	// only the mark that just moved can have won
	lastMoved := starting
	if first == second {
		lastMoved = starting.Other()
	}

	if winner != lastMoved {
		return fmt.Errorf("%w: %s won but %s moved last", apperror.ErrInvalidGameState, winner, lastMoved)
	}

	patterns, err := pattern.For(state.Grid().Size(), state.Grid().WinningLen())
	if err != nil {
		return fmt.Errorf("failed to load winning patterns: %w", err)
	}

	if cells := lineOf(state.Grid(), patterns, winner.Other()); cells != nil {
		return fmt.Errorf("%w: %s won but %s also holds %v", apperror.ErrInvalidGameState, winner, winner.Other(), cells)
	}

	return nil
}

// NewValidatedGameState builds a state from untrusted input and validates it.
func NewValidatedGameState(grid Grid, startingMark Mark) (GameState, error) {
	state, err := NewGameState(grid, startingMark)
	if err != nil {
		return GameState{}, err
	}

	if err = ValidateGameState(state); err != nil {
		return GameState{}, err
	}

	return state, nil
}
