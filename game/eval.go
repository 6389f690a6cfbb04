package game

import "sort"

// Standing is a player's position in the ranking, with its share of the board.
type Standing struct {
	Player     Player
	Rank       int     // 1-based
	CellShare  float64 // Share of all owned cells, between 0 and 1
	TroopShare float64 // Share of all troops on owned cells, between 0 and 1
}

// Standings ranks players by capitals, then cells, then troops, then money.
// Ties keep id order. Inactive players rank below active ones.
func Standings(players []Player) []Standing {
	ordered := make([]Player, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if a.Capitals != b.Capitals {
			return a.Capitals > b.Capitals
		}
		if a.TotalCells != b.TotalCells {
			return a.TotalCells > b.TotalCells
		}
		if a.TotalTroops != b.TotalTroops {
			return a.TotalTroops > b.TotalTroops
		}
		return a.Money > b.Money
	})

	cells, troops := 0, 0
	for _, p := range players {
		cells += p.TotalCells
		troops += p.TotalTroops
	}

	standings := make([]Standing, len(ordered))
	for i, p := range ordered {
		standings[i] = Standing{
			Player:     p,
			Rank:       i + 1,
			CellShare:  Share(float64(p.TotalCells), float64(cells)),
			TroopShare: Share(float64(p.TotalTroops), float64(troops)),
		}
	}
	return standings
}

// Leader returns the top-ranked player, or false if there are no players.
func Leader(players []Player) (Player, bool) {
	standings := Standings(players)
	if len(standings) == 0 {
		return Player{}, false
	}
	return standings[0].Player, true
}

// Share normalizes value relative to total to a score between 0 and 1
func Share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total
}
