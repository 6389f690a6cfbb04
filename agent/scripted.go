package agent

import (
	"conquest/dice"
	"conquest/game"
)

// Scripted attacks the weakest enemy or unowned neighbour of the first owned
// cell, in row-major order, that has troops to spare and a target. It does not
// plan ahead or adapt to opponents.
type Scripted struct {
	roller dice.Roller
}

// NewScripted returns a Scripted agent that breaks ties between equally weak
// targets with roller.
func NewScripted(roller dice.Roller) *Scripted {
	return &Scripted{roller: roller}
}

func (s *Scripted) NextAttack(g *game.Grid, player int) (game.Position, game.Position, bool) {
	attackers := g.Positions(func(c game.Cell) bool {
		return c.Owner == player && c.Troops > 1
	})

	for _, from := range attackers {
		targets := weakest(g, from, player)
		if len(targets) == 0 {
			continue
		}
		return from, targets[s.roller.Intn(len(targets))], true
	}
	return game.Position{}, game.Position{}, false
}

// weakest returns the neighbours of from not owned by player that hold the
// fewest troops.
func weakest(g *game.Grid, from game.Position, player int) []game.Position {
	var targets []game.Position
	fewest := -1
	for _, n := range g.Neighbors(from) {
		cell := g.At(n)
		if cell.Owner == player {
			continue
		}
		switch {
		case fewest < 0 || cell.Troops < fewest:
			fewest = cell.Troops
			targets = []game.Position{n}
		case cell.Troops == fewest:
			targets = append(targets, n)
		}
	}
	return targets
}
