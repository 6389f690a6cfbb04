package metrics

import (
	"time"

	"conquest/game"
)

type TurnMetric struct {
	Turn      int
	Player    int // Player ID
	Attacks   int
	Captures  int
	Purchases int
	Upgrades  int
}

type GameMetric struct {
	Players        int
	StartingPlayer int    // Player ID
	Winner         string // Player name, "" if the game did not finish
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	Attacks        int
	Captures       int
	Eliminations   int
}

// Collector receives the events of one game from the engine.
type Collector interface {
	Start(settings game.Settings, startingPlayer int)
	AddAction(player int, action game.ActionType, success bool)
	AddElimination(player int)
	EndTurn(turn, player int)
	Complete(winner string) GameMetric
	Turns() []TurnMetric
}

type collector struct {
	players        int
	startingPlayer int
	startTime      time.Time
	current        TurnMetric
	turns          []TurnMetric
	attacks        int
	captures       int
	eliminations   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(settings game.Settings, startingPlayer int) {
	*m = collector{
		players:        settings.Players(),
		startingPlayer: startingPlayer,
		startTime:      time.Now(),
		current:        TurnMetric{Turn: 1, Player: startingPlayer},
	}
}

func (m *collector) AddAction(player int, action game.ActionType, success bool) {
	m.current.Player = player
	switch action {
	case game.AttackAction:
		m.current.Attacks++
		m.attacks++
		if success {
			m.current.Captures++
			m.captures++
		}
	case game.PurchaseAction:
		if success {
			m.current.Purchases++
		}
	case game.UpgradeAction:
		if success {
			m.current.Upgrades++
		}
	}
}

func (m *collector) AddElimination(player int) {
	m.eliminations++
}

// EndTurn records the turn that just finished and opens the next one.
func (m *collector) EndTurn(turn, player int) {
	m.current.Turn = turn
	m.current.Player = player
	m.turns = append(m.turns, m.current)
	m.current = TurnMetric{Turn: turn + 1}
}

func (m *collector) Complete(winner string) GameMetric {
	// Flush the turn the game ended in
	if m.current.Attacks > 0 || m.current.Purchases > 0 || m.current.Upgrades > 0 {
		m.turns = append(m.turns, m.current)
		m.current = TurnMetric{Turn: m.current.Turn + 1}
	}
	end := time.Now()
	return GameMetric{
		Players:        m.players,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalTurns:     len(m.turns),
		Attacks:        m.attacks,
		Captures:       m.captures,
		Eliminations:   m.eliminations,
	}
}

func (m *collector) Turns() []TurnMetric {
	turns := make([]TurnMetric, len(m.turns))
	copy(turns, m.turns)
	return turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(settings game.Settings, startingPlayer int)          {}
func (m *dummyCollector) AddAction(player int, action game.ActionType, success bool) {}
func (m *dummyCollector) AddElimination(player int)                                 {}
func (m *dummyCollector) EndTurn(turn, player int)                                  {}
func (m *dummyCollector) Complete(winner string) GameMetric                         { return GameMetric{} }
func (m *dummyCollector) Turns() []TurnMetric                                       { return nil }
