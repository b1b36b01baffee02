package errors

import "errors"

var (
	ErrOutOfBounds          = errors.New("point is outside the board")
	ErrPointOccupied        = errors.New("point is already occupied")
	ErrSuicideMove          = errors.New("move would leave own group without liberties")
	ErrKoViolation          = errors.New("immediate ko recapture is forbidden")
	ErrGameOver             = errors.New("game is already finished")
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrGameNotFound         = errors.New("game not found")
	ErrNotYourTurn          = errors.New("not this player's turn")
)
