package engine

import "errors"

var (
	ErrNotRunning   = errors.New("game is not running")
	ErrNotHumanTurn = errors.New("current player is AI-controlled")
)
