// Package agent decides the attacks of AI-controlled players.
package agent

import "conquest/game"

// Agent picks attacks for an AI-controlled player.
type Agent interface {
	// NextAttack returns the next attack for player on g, or false when it has
	// none left. g is the engine's live grid and must not be modified.
	NextAttack(g *game.Grid, player int) (from, to game.Position, ok bool)
}
