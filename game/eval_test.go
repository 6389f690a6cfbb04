package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandings(t *testing.T) {
	players := []Player{
		{ID: 0, IsActive: true, Capitals: 1, TotalCells: 3, TotalTroops: 4},
		{ID: 1, IsActive: true, Capitals: 2, TotalCells: 2, TotalTroops: 2},
		{ID: 2, IsActive: false, Capitals: 0, TotalCells: 4, TotalTroops: 10},
		{ID: 3, IsActive: true, Capitals: 1, TotalCells: 3, TotalTroops: 4, Money: 5},
	}

	standings := Standings(players)

	ids := []int{}
	for _, s := range standings {
		ids = append(ids, s.Player.ID)
	}
	require.Equal(t, []int{1, 3, 0, 2}, ids)
	require.Equal(t, 1, standings[0].Rank)
	require.Equal(t, 4, standings[3].Rank)
	require.InDelta(t, 2.0/12.0, standings[0].CellShare, 1e-9)
	require.InDelta(t, 10.0/20.0, standings[3].TroopShare, 1e-9)

	leader, ok := Leader(players)
	require.True(t, ok)
	require.Equal(t, 1, leader.ID)

	_, ok = Leader(nil)
	require.False(t, ok)
}

func TestShare(t *testing.T) {
	require.Equal(t, 0.0, Share(3, 0))
	require.Equal(t, 0.25, Share(1, 4))
}
