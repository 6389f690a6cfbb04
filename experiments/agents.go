package experiments

import (
	"fmt"

	"conquest/agent"
	"conquest/dice"
	"conquest/searcher"
)

const (
	ScriptedAgent   = "scripted"
	MonteCarloAgent = "montecarlo"
)

// AgentConfig selects the AI every AI seat is played by.
type AgentConfig struct {
	Kind       string
	Goroutines int // montecarlo only
	Episodes   int // montecarlo only
}

// New builds the configured agent drawing its randomness from roller.
func (c AgentConfig) New(roller dice.Roller) (agent.Agent, error) {
	switch c.Kind {
	case "", ScriptedAgent:
		return agent.NewScripted(roller), nil
	case MonteCarloAgent:
		return searcher.New(c.Goroutines, roller, searcher.WithEpisodes(c.Episodes)), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", c.Kind)
	}
}
