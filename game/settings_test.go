package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultSettings().Validate())
		require.NoError(t, FallbackSettings().Validate())
	})

	t.Run("all-AI games are valid", func(t *testing.T) {
		s := DefaultSettings()
		s.HumanPlayers = 0
		s.AIPlayers = 2
		require.NoError(t, s.Validate())
	})

	t.Run("small grids are raised rather than rejected", func(t *testing.T) {
		s := DefaultSettings()
		s.GridWidth = 2
		s.GridHeight = 3
		require.NoError(t, s.Validate())
	})

	invalid := map[string]func(*Settings){
		"single player":           func(s *Settings) { s.HumanPlayers, s.AIPlayers = 1, 0 },
		"negative humans":         func(s *Settings) { s.HumanPlayers = -1 },
		"zero width":              func(s *Settings) { s.GridWidth = 0 },
		"oversized grid":          func(s *Settings) { s.GridHeight = MaxGridSize + 1 },
		"zero initial troops":     func(s *Settings) { s.InitialTroops = 0 },
		"zero troops per turn":    func(s *Settings) { s.TroopsPerTurn = 0 },
		"negative troop cost":     func(s *Settings) { s.TroopCost = -1 },
		"zero capital cost":       func(s *Settings) { s.CapitalCost = 0 },
		"zero income":             func(s *Settings) { s.MoneyPerCapital = 0 },
		"more players than cells": func(s *Settings) { s.GridWidth, s.GridHeight, s.AIPlayers = 5, 5, 30 },
	}
	t.Run("reports the first invalid value in field order", func(t *testing.T) {
		s := DefaultSettings()
		s.TroopCost = 0
		s.InitialMoney = 0
		s.GridHeight = 0
		for i := 0; i < 20; i++ {
			require.ErrorContains(t, s.Validate(), "grid height must be positive, got 0")
		}
	})

	for name, mutate := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			s := DefaultSettings()
			mutate(&s)
			require.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

func TestNewPlayers(t *testing.T) {
	players := NewPlayers(1, 3, 10)

	require.Len(t, players, 4)
	for i, p := range players {
		require.Equal(t, i, p.ID)
		require.Equal(t, i > 0, p.IsAI)
		require.True(t, p.IsActive)
		require.Equal(t, 10, p.Money)
		require.NotEmpty(t, p.Color)
	}
	require.Equal(t, "Player 1", players[0].Name)
	require.Equal(t, "AI 1", players[1].Name)
	require.Equal(t, "AI 3", players[3].Name)
}

func TestRecomputeStats(t *testing.T) {
	g := NewGrid(5, 5)
	g.Cells[0][0] = Cell{X: 0, Y: 0, Owner: 0, Troops: 5, IsCapital: true}
	g.Cells[0][1] = Cell{X: 1, Y: 0, Owner: 0, Troops: 2}
	g.Cells[4][4] = Cell{X: 4, Y: 4, Owner: 1, Troops: 7, IsCapital: true}
	g.Cells[3][4] = Cell{X: 4, Y: 3, Owner: 1, Troops: 1, IsCapital: true}
	players := NewPlayers(1, 1, 0)
	players[0].TotalTroops = 99 // stale values are overwritten

	RecomputeStats(g, players)

	require.Equal(t, 1, players[0].Capitals)
	require.Equal(t, 2, players[0].TotalCells)
	require.Equal(t, 7, players[0].TotalTroops)
	require.Equal(t, 2, players[1].Capitals)
	require.Equal(t, 2, players[1].TotalCells)
	require.Equal(t, 8, players[1].TotalTroops)

	t.Run("panics on cells owned by unknown players", func(t *testing.T) {
		g.Cells[2][2].Owner = 5
		require.Panics(t, func() { RecomputeStats(g, players) })
	})
}

func TestStatus(t *testing.T) {
	require.Equal(t, "loading", Loading.String())
	require.Equal(t, "running", Running.String())
	require.Equal(t, "paused", Paused.String())
	require.Equal(t, "game over", GameOver.String())
	require.Equal(t, "attack", AttackAction.String())
}
