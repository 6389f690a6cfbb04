package searcher

import (
	"math"
	"sync"

	"conquest/agent"
	"conquest/dice"
	"conquest/game"
)

const DefaultEpisodes = 32

type Option func(m *MonteCarlo)

// MonteCarlo estimates the value of every legal attack by resolving it
// repeatedly on a copy of the grid. Candidates are searched in parallel.
type MonteCarlo struct {
	goroutines int
	episodes   int
	rules      game.Rules
	evaluate   Evaluate
	roller     dice.Roller
	metrics    MetricsCollector
	last       SearchMetrics
}

var _ agent.Agent = (*MonteCarlo)(nil)

func WithEpisodes(episodes int) Option {
	return func(m *MonteCarlo) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(m *MonteCarlo) {
		if rules != nil {
			m.rules = rules
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *MonteCarlo) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MonteCarlo) {
		m.metrics = NewMetricsCollector()
	}
}

// New returns an agent searching on the given number of goroutines. Each
// candidate gets its own seed drawn from roller, so the choice does not depend
// on scheduling.
func New(goroutines int, roller dice.Roller, options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		goroutines: max(1, goroutines),
		episodes:   DefaultEpisodes,
		rules:      game.NewStandardRules(),
		evaluate:   EvaluateResources,
		roller:     roller,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

type candidate struct {
	from, to game.Position
	seed     uint64
	score    float64
}

// NextAttack returns the attack with the best mean evaluation. It passes when
// no attack is expected to improve on the current grid.
func (m *MonteCarlo) NextAttack(g *game.Grid, player int) (game.Position, game.Position, bool) {
	m.metrics.Start(m.goroutines)
	defer func() { m.last = m.metrics.Complete() }()

	candidates := m.candidates(g, player)
	if len(candidates) == 0 {
		return game.Position{}, game.Position{}, false
	}

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for c := range task {
				candidates[c].score = m.sample(g, player, candidates[c])
				m.metrics.AddCandidate()
			}
		}()
	}
	wg.Wait()

	best := -1
	baseline := m.evaluate(g, player)
	for i, c := range candidates {
		if c.score > baseline && (best < 0 || c.score > candidates[best].score) {
			best = i
		}
	}
	if best < 0 {
		return game.Position{}, game.Position{}, false
	}
	return candidates[best].from, candidates[best].to, true
}

// Metrics returns the metrics of the last search. They are only collected
// when the agent was built WithMetrics.
func (m *MonteCarlo) Metrics() SearchMetrics {
	return m.last
}

// candidates lists every legal attack of player in row-major order.
func (m *MonteCarlo) candidates(g *game.Grid, player int) []candidate {
	var candidates []candidate
	attackers := g.Positions(func(c game.Cell) bool {
		return c.Owner == player && c.Troops > 1
	})
	for _, from := range attackers {
		for _, to := range g.Neighbors(from) {
			if g.At(to).Owner == player {
				continue
			}
			candidates = append(candidates, candidate{
				from: from,
				to:   to,
				seed: uint64(m.roller.Intn(math.MaxInt32)),
			})
		}
	}
	return candidates
}

// sample returns the mean evaluation of c over the configured episodes.
func (m *MonteCarlo) sample(g *game.Grid, player int, c candidate) float64 {
	board := g.Copy()
	from, to := board.At(c.from), board.At(c.to)
	savedFrom, savedTo := *from, *to

	// Attacks on unowned cells are not rolled
	episodes := m.episodes
	if !to.IsOwned() {
		episodes = 1
	}

	roller := dice.New(c.seed)
	total := 0.0
	for i := 0; i < episodes; i++ {
		game.ResolveAttack(from, to, m.rules, roller)
		total += m.evaluate(board, player)
		*from, *to = savedFrom, savedTo
		m.metrics.AddEpisode()
	}
	return total / float64(episodes)
}
