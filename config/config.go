// Package config loads game settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"conquest/game"
)

// Config is everything a game or simulation is started from.
type Config struct {
	Settings game.Settings
	Seed     uint64 // 0 seeds from the clock
}

type environment struct {
	GridWidth       int    `env:"CONQUEST_GRID_WIDTH"`
	GridHeight      int    `env:"CONQUEST_GRID_HEIGHT"`
	HumanPlayers    int    `env:"CONQUEST_HUMANS"`
	AIPlayers       int    `env:"CONQUEST_AIS"`
	InitialMoney    int    `env:"CONQUEST_INITIAL_MONEY"`
	InitialTroops   int    `env:"CONQUEST_INITIAL_TROOPS"`
	TroopsPerTurn   int    `env:"CONQUEST_TROOPS_PER_TURN"`
	MoneyPerCapital int    `env:"CONQUEST_MONEY_PER_CAPITAL"`
	CapitalCost     int    `env:"CONQUEST_CAPITAL_COST"`
	TroopCost       int    `env:"CONQUEST_TROOP_COST"`
	Seed            uint64 `env:"CONQUEST_SEED"`
}

// Load returns the default settings overridden by any CONQUEST_* variables.
// Values are not validated here; the engine falls back on invalid settings.
func Load() (Config, error) {
	s := game.DefaultSettings()
	e := environment{
		GridWidth:       s.GridWidth,
		GridHeight:      s.GridHeight,
		HumanPlayers:    s.HumanPlayers,
		AIPlayers:       s.AIPlayers,
		InitialMoney:    s.InitialMoney,
		InitialTroops:   s.InitialTroops,
		TroopsPerTurn:   s.TroopsPerTurn,
		MoneyPerCapital: s.MoneyPerCapital,
		CapitalCost:     s.CapitalCost,
		TroopCost:       s.TroopCost,
	}
	if err := ParseEnv(&e); err != nil {
		return Config{}, err
	}

	return Config{
		Settings: game.Settings{
			GridWidth:       e.GridWidth,
			GridHeight:      e.GridHeight,
			HumanPlayers:    e.HumanPlayers,
			AIPlayers:       e.AIPlayers,
			InitialMoney:    e.InitialMoney,
			InitialTroops:   e.InitialTroops,
			TroopsPerTurn:   e.TroopsPerTurn,
			MoneyPerCapital: e.MoneyPerCapital,
			CapitalCost:     e.CapitalCost,
			TroopCost:       e.TroopCost,
		},
		Seed: e.Seed,
	}, nil
}

// ParseEnv loads tagged fields of target from environment variables. Fields
// whose variable is unset keep their value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
