package game

import "errors"

var (
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrOutOfBounds     = errors.New("position is outside the grid")

	// Attack errors
	ErrNotEnoughTroops = errors.New("not enough troops")
	ErrTooFar          = errors.New("target is not adjacent")
	ErrNoMovesLeft     = errors.New("no moves left this turn")
	ErrSameOwner       = errors.New("target is owned by the same player")

	// Shop errors
	ErrInvalidCount      = errors.New("troop count must be positive")
	ErrNotOwner          = errors.New("cell is not owned by the current player")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyCapital    = errors.New("cell is already a capital")
)
