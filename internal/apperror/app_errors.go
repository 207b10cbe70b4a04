package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrUnknownPlayer    = errors.New("player is not part of this game")
	ErrNotEnoughPlayers = errors.New("at least one player is required")
	ErrDuplicatePlayer  = errors.New("player name is already taken")
	ErrInvalidRoll      = errors.New("roll is out of die range")
	ErrTurnLimitReached = errors.New("turn limit reached without a winner")
)
