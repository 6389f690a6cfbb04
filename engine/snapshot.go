package engine

import "conquest/game"

// Snapshot is a consistent copy of everything a renderer needs.
type Snapshot struct {
	Status         game.Status    `json:"status"`
	Settings       game.Settings  `json:"settings"`
	Grid           *game.Grid     `json:"grid"`
	Players        []game.Player  `json:"players"`
	CurrentPlayer  int            `json:"current_player"`
	Selected       *game.Position `json:"selected,omitempty"`
	MovesAvailable int            `json:"moves_available"`
	Message        string         `json:"message"`
	Turn           int            `json:"turn"`
	Winner         int            `json:"winner"`
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Status:         e.status,
		Settings:       e.settings,
		Grid:           e.Grid(),
		Players:        e.Players(),
		CurrentPlayer:  e.currentPlayer,
		MovesAvailable: e.movesAvailable,
		Message:        e.message,
		Turn:           e.turn,
		Winner:         e.winner,
	}
	if pos, ok := e.SelectedCell(); ok {
		s.Selected = &pos
	}
	return s
}
