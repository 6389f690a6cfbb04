package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"conquest/engine"
	"conquest/game"
	"conquest/utils"
)

const cellWidth = 7

// mark is the letter a player's cells are drawn with.
func mark(id int) string {
	return string(rune('A' + id%26))
}

func cellLabel(c game.Cell, selected *game.Position) string {
	label := "."
	if c.IsOwned() {
		label = fmt.Sprintf("%s%d", mark(c.Owner), c.Troops)
	}
	if c.IsCapital {
		label += "*"
	}
	if selected != nil && *selected == c.Position() {
		label = "[" + label + "]"
	}
	return label
}

func renderGrid(w io.Writer, g *game.Grid, selected *game.Position) {
	fmt.Fprintf(w, "%4s", "")
	for x := 0; x < g.Width; x++ {
		fmt.Fprintf(w, "%*d", cellWidth, x)
	}
	fmt.Fprintln(w)
	for y, row := range g.Cells {
		fmt.Fprintf(w, "%4d", y)
		for _, cell := range row {
			fmt.Fprintf(w, "%*s", cellWidth, cellLabel(cell, selected))
		}
		fmt.Fprintln(w)
	}
}

func renderBoard(w io.Writer, s engine.Snapshot) {
	if s.Grid == nil {
		fmt.Fprintln(w, "No game in progress")
		return
	}
	renderGrid(w, s.Grid, s.Selected)
	current := s.Players[s.CurrentPlayer]
	fmt.Fprintf(w, "Turn %d | %s (%s) | $%d | %d moves left | %s\n",
		s.Turn, current.Name, mark(current.ID), current.Money, s.MovesAvailable, s.Status)
	fmt.Fprintln(w, s.Message)
}

// renderPlayers prints the player table in seat order with each player's rank.
func renderPlayers(w io.Writer, s engine.Snapshot) error {
	standings := game.Standings(s.Players)
	ranked := make([]int, len(standings))
	for i, st := range standings {
		ranked[i] = st.Player.ID
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tRANK\tMARK\tNAME\tMONEY\tCAPITALS\tCELLS\tTROOPS\tSTATUS")
	for _, p := range s.Players {
		pointer := ""
		if p.ID == s.CurrentPlayer {
			pointer = ">"
		}
		status := "active"
		if !p.IsActive {
			status = "defeated"
		}
		kind := "human"
		if p.IsAI {
			kind = "ai"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s (%s)\t$%d\t%d\t%d\t%d\t%s\n",
			pointer, utils.FindIndex(ranked, p.ID)+1, mark(p.ID), p.Name, kind,
			p.Money, p.Capitals, p.TotalCells, p.TotalTroops, status)
	}
	return tw.Flush()
}
