package experiments

import "sort"

// Throughput returns the number of games completed per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(len(r.Games)) / r.Elapsed.Seconds()
}

type WinCount struct {
	Winner string // "" counts games nobody won
	Games  int
}

// Wins tallies the winners, most wins first.
func (r Result) Wins() []WinCount {
	counts := map[string]int{}
	for _, g := range r.Games {
		counts[g.Winner]++
	}
	wins := make([]WinCount, 0, len(counts))
	for winner, games := range counts {
		wins = append(wins, WinCount{Winner: winner, Games: games})
	}
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Games != wins[j].Games {
			return wins[i].Games > wins[j].Games
		}
		return wins[i].Winner < wins[j].Winner
	})
	return wins
}

// MeanTurns returns the average game length in turns.
func (r Result) MeanTurns() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.TotalTurns
	}
	return float64(total) / float64(len(r.Games))
}
