// Package game holds the data model of the territory conquest game: the grid of
// cells, the players, the settings a game is created from, and the combat rules
// that decide attacks. It has no notion of turns or selection; those live in
// package engine.
package game

const (
	// Unowned is the owner value of a cell no player controls.
	Unowned = -1

	MinGridSize = 5
	MaxGridSize = 100
)

// Status is the state of the game state machine.
type Status int

const (
	Loading Status = iota
	Running
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
