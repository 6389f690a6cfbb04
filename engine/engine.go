// Package engine owns the authoritative state of a game and every operation
// that changes it: initialization, cell clicks, attacks, turn ends, the AI
// opponents, and the troop and capital shop.
//
// The engine is synchronous and not safe for concurrent use. Callers observe it
// through accessors and Snapshot, which return copies; nothing they hold can
// change engine state.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conquest/agent"
	"conquest/dice"
	"conquest/experiments/metrics"
	"conquest/game"
)

type Option func(e *Engine)

type Engine struct {
	settings       game.Settings
	status         game.Status
	grid           *game.Grid
	players        []game.Player
	currentPlayer  int
	movesAvailable int
	selected       *game.Position
	message        string
	turn           int
	winner         int

	rules   game.Rules
	roller  dice.Roller
	agent   agent.Agent
	metrics metrics.Collector
	logger  zerolog.Logger
}

// WithRoller sets the source of every random draw (capital placement, combat,
// AI tie breaks).
func WithRoller(roller dice.Roller) Option {
	return func(e *Engine) {
		if roller != nil {
			e.roller = roller
		}
	}
}

// WithSeed makes the game reproducible.
func WithSeed(seed uint64) Option {
	return WithRoller(dice.New(seed))
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithAgent replaces the scripted AI.
func WithAgent(a agent.Agent) Option {
	return func(e *Engine) {
		if a != nil {
			e.agent = a
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New returns an engine in the Loading state. Call InitializeGame to start playing.
func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		status:  game.Loading,
		winner:  game.Unowned,
		rules:   game.NewStandardRules(),
		metrics: metrics.NewDummyCollector(),
		logger:  log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	if e.roller == nil {
		e.roller = dice.NewTimeSeeded()
	}
	if e.agent == nil {
		e.agent = agent.NewScripted(e.roller)
	}
	return e
}

func (e *Engine) Status() game.Status {
	return e.status
}

func (e *Engine) Settings() game.Settings {
	return e.settings
}

// Grid returns a copy of the grid, or nil before the first InitializeGame.
func (e *Engine) Grid() *game.Grid {
	if e.grid == nil {
		return nil
	}
	return e.grid.Copy()
}

// Cell returns a copy of the cell at p.
func (e *Engine) Cell(p game.Position) (game.Cell, bool) {
	if e.grid == nil {
		return game.Cell{}, false
	}
	cell := e.grid.At(p)
	if cell == nil {
		return game.Cell{}, false
	}
	return *cell, true
}

func (e *Engine) Players() []game.Player {
	players := make([]game.Player, len(e.players))
	copy(players, e.players)
	return players
}

func (e *Engine) CurrentPlayerIndex() int {
	return e.currentPlayer
}

func (e *Engine) CurrentPlayer() game.Player {
	return *e.player(e.currentPlayer)
}

// SelectedCell returns the selected position, if any.
func (e *Engine) SelectedCell() (game.Position, bool) {
	if e.selected == nil {
		return game.Position{}, false
	}
	return *e.selected, true
}

func (e *Engine) MovesAvailable() int {
	return e.movesAvailable
}

// Message returns the last status message.
func (e *Engine) Message() string {
	return e.message
}

// Turn returns the 1-based number of the turn in progress.
func (e *Engine) Turn() int {
	return e.turn
}

// Winner returns the winning player once the game is over. There is no winner
// when every player was eliminated.
func (e *Engine) Winner() (game.Player, bool) {
	if e.status != game.GameOver || e.winner == game.Unowned {
		return game.Player{}, false
	}
	return *e.player(e.winner), true
}

// Pause stops a running game; every mutating operation is refused until Resume.
func (e *Engine) Pause() error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	e.status = game.Paused
	e.message = msgPaused
	return nil
}

func (e *Engine) Resume() error {
	if e.status != game.Paused {
		return fmt.Errorf("cannot resume from %s", e.status)
	}
	e.status = game.Running
	e.message = msgResumed
	return nil
}

// player returns the player with the given id. An unknown id is a programming error.
func (e *Engine) player(id int) *game.Player {
	if id < 0 || id >= len(e.players) {
		panic(fmt.Sprintf("no player with id %d (have %d players)", id, len(e.players)))
	}
	return &e.players[id]
}
