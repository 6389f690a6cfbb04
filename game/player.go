package game

import "fmt"

// Palette holds the display colours handed out to players in id order.
var Palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231",
	"#911eb4", "#42d4f4", "#f032e6", "#bfef45",
}

// Player is a participant in the game. ID doubles as the index in the player list.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsAI     bool   `json:"is_ai"`
	IsActive bool   `json:"is_active"` // false once the last capital is lost
	Money    int    `json:"money"`

	// Derived from the grid by RecomputeStats, never set directly
	Capitals    int `json:"capitals"`
	TotalCells  int `json:"total_cells"`
	TotalTroops int `json:"total_troops"`
}

// NewPlayers creates the human players followed by the AI players.
func NewPlayers(humans, ais, money int) []Player {
	players := make([]Player, 0, humans+ais)
	for i := 0; i < humans+ais; i++ {
		isAI := i >= humans
		name := fmt.Sprintf("Player %d", i+1)
		if isAI {
			name = fmt.Sprintf("AI %d", i-humans+1)
		}
		players = append(players, Player{
			ID:       i,
			Name:     name,
			Color:    Palette[i%len(Palette)],
			IsAI:     isAI,
			IsActive: true,
			Money:    money,
		})
	}
	return players
}

// RecomputeStats rescans the grid and rewrites the derived stats of every player.
func RecomputeStats(g *Grid, players []Player) {
	for i := range players {
		players[i].Capitals = 0
		players[i].TotalCells = 0
		players[i].TotalTroops = 0
	}
	for y := range g.Cells {
		for _, cell := range g.Cells[y] {
			if !cell.IsOwned() {
				continue
			}
			if cell.Owner >= len(players) {
				panic(fmt.Sprintf("cell %s owned by unknown player %d", cell.Position(), cell.Owner))
			}
			p := &players[cell.Owner]
			p.TotalCells++
			p.TotalTroops += cell.Troops
			if cell.IsCapital {
				p.Capitals++
			}
		}
	}
}

// ActiveCount returns the number of players still in the game.
func ActiveCount(players []Player) int {
	count := 0
	for _, p := range players {
		if p.IsActive {
			count++
		}
	}
	return count
}
