// Package searcher implements a sampling agent: it plays every legal attack
// many times on copies of the grid and picks the one with the best average
// evaluation.
package searcher

import "conquest/game"

// Evaluate scores a grid from the point of view of player, higher is better.
type Evaluate func(g *game.Grid, player int) float64

// EvaluateResources averages the player's share of the cells, troops, and
// capitals on the grid.
func EvaluateResources(g *game.Grid, player int) float64 {
	cells, troops, capitals := tally(g)
	return (share(cells, player) + share(troops, player) + share(capitals, player)) / 3
}

// EvaluateBorderStrength adds the share of the player's troops that sit on
// cells touching a cell it does not own.
func EvaluateBorderStrength(g *game.Grid, player int) float64 {
	border, total := 0, 0
	for y := range g.Cells {
		for _, cell := range g.Cells[y] {
			if cell.Owner != player {
				continue
			}
			total += cell.Troops
			for _, n := range g.Neighbors(cell.Position()) {
				if g.At(n).Owner != player {
					border += cell.Troops
					break
				}
			}
		}
	}
	return (3*EvaluateResources(g, player) + game.Share(float64(border), float64(total))) / 4
}

// tally sums cells, troops and capitals per owner. Unowned cells are skipped.
func tally(g *game.Grid) (cells, troops, capitals map[int]int) {
	cells, troops, capitals = map[int]int{}, map[int]int{}, map[int]int{}
	for y := range g.Cells {
		for _, cell := range g.Cells[y] {
			if !cell.IsOwned() {
				continue
			}
			cells[cell.Owner]++
			troops[cell.Owner] += cell.Troops
			if cell.IsCapital {
				capitals[cell.Owner]++
			}
		}
	}
	return cells, troops, capitals
}

func share(m map[int]int, player int) float64 {
	total := 0
	for _, v := range m {
		total += v
	}
	return game.Share(float64(m[player]), float64(total))
}
