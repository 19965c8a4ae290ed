package apperror

import "errors"

var (
	ErrInvalidGrid           = errors.New("invalid grid")
	ErrInvalidMove           = errors.New("invalid move")
	ErrInvalidWinningPattern = errors.New("invalid winning pattern")
	ErrInvalidGameState      = errors.New("invalid game state")
	ErrInvalidPlayer         = errors.New("invalid player")

	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNotFound         = errors.New("not found")
)
