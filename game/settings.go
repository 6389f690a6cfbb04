package game

import (
	"fmt"

	"conquest/meta"
)

// Settings configures a game. They are consumed once by engine initialization.
type Settings struct {
	GridWidth       int `json:"grid_width"`
	GridHeight      int `json:"grid_height"`
	HumanPlayers    int `json:"human_players"`
	AIPlayers       int `json:"ai_players"`
	InitialMoney    int `json:"initial_money"`
	InitialTroops   int `json:"initial_troops"`    // Troops on each starting capital
	TroopsPerTurn   int `json:"troops_per_turn"`   // Attacks allowed per turn
	MoneyPerCapital int `json:"money_per_capital"` // Income per capital at turn end
	CapitalCost     int `json:"capital_cost"`
	TroopCost       int `json:"troop_cost"`
}

func DefaultSettings() Settings {
	return Settings{
		GridWidth:       meta.GRID_WIDTH,
		GridHeight:      meta.GRID_HEIGHT,
		HumanPlayers:    meta.HUMAN_PLAYERS,
		AIPlayers:       meta.AI_PLAYERS,
		InitialMoney:    meta.INITIAL_MONEY,
		InitialTroops:   meta.INITIAL_TROOPS,
		TroopsPerTurn:   meta.TROOPS_PER_TURN,
		MoneyPerCapital: meta.MONEY_PER_CAPITAL,
		CapitalCost:     meta.CAPITAL_COST,
		TroopCost:       meta.TROOP_COST,
	}
}

// FallbackSettings is the minimal board used when the requested settings cannot
// produce a game.
func FallbackSettings() Settings {
	s := DefaultSettings()
	s.GridWidth = MinGridSize
	s.GridHeight = MinGridSize
	s.HumanPlayers = 1
	s.AIPlayers = 1
	return s
}

// Players returns the total number of players.
func (s Settings) Players() int {
	return s.HumanPlayers + s.AIPlayers
}

// Validate checks that s can produce a playable game. Grid dimensions below
// MinGridSize are accepted since the grid is raised to the minimum anyway.
func (s Settings) Validate() error {
	if s.HumanPlayers < 0 || s.AIPlayers < 0 {
		return fmt.Errorf("%w: negative player count", ErrInvalidSettings)
	}
	if s.Players() < 2 {
		return fmt.Errorf("%w: need at least two players, got %d", ErrInvalidSettings, s.Players())
	}
	if s.GridWidth > MaxGridSize || s.GridHeight > MaxGridSize {
		return fmt.Errorf("%w: grid %dx%d exceeds %d", ErrInvalidSettings, s.GridWidth, s.GridHeight, MaxGridSize)
	}
	positive := []struct {
		name  string
		value int
	}{
		{"grid width", s.GridWidth},
		{"grid height", s.GridHeight},
		{"initial money", s.InitialMoney},
		{"initial troops", s.InitialTroops},
		{"troops per turn", s.TroopsPerTurn},
		{"money per capital", s.MoneyPerCapital},
		{"capital cost", s.CapitalCost},
		{"troop cost", s.TroopCost},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSettings, field.name, field.value)
		}
	}
	cells := max(MinGridSize, s.GridWidth) * max(MinGridSize, s.GridHeight)
	if s.Players() > cells {
		return fmt.Errorf("%w: %d players do not fit on %d cells", ErrInvalidSettings, s.Players(), cells)
	}
	return nil
}
