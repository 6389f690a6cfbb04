// Package experiments plays batches of all-AI games and records their metrics.
package experiments

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conquest/dice"
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/meta"
)

type Config struct {
	Name     string
	Games    int
	Seed     uint64 // Game i is played with Seed+i
	Workers  int
	Settings game.Settings
	Agent    AgentConfig
	OutDir   string // Records are only written when set
	Logger   *zerolog.Logger
}

// DefaultConfig plays meta.GAMES games on the default board, every seat an AI.
func DefaultConfig() Config {
	return Config{
		Name:     "simulation",
		Games:    meta.GAMES,
		Seed:     meta.SEED,
		Workers:  1,
		Settings: game.DefaultSettings(),
		Agent:    AgentConfig{Kind: ScriptedAgent},
	}
}

type Result struct {
	Settings game.Settings
	Games    []metrics.GameRecord
	Turns    []metrics.TurnRecord
	Elapsed  time.Duration
	Dir      string // Where the records were written, if anywhere
}

// Run plays cfg.Games games concurrently on cfg.Workers goroutines. Every game
// has its own engine and seed, so results do not depend on scheduling.
func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		return Result{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	settings := cfg.Settings
	settings.AIPlayers = settings.Players()
	settings.HumanPlayers = 0
	if err := settings.Validate(); err != nil {
		return Result{}, err
	}
	if _, err := cfg.Agent.New(dice.New(cfg.Seed)); err != nil {
		return Result{}, err
	}

	logger.Info().Str("experiment", cfg.Name).Int("games", cfg.Games).Msg("Starting experiment")
	start := time.Now()

	games := make([]metrics.GameRecord, cfg.Games)
	turns := make([][]metrics.TurnMetric, cfg.Games)

	task := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < max(1, cfg.Workers); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				seed := cfg.Seed + uint64(i)
				gameMetric, turnMetrics := runGame(settings, cfg.Agent, seed, logger)
				games[i] = metrics.GameRecord{ID: i + 1, Seed: seed, GameMetric: gameMetric}
				turns[i] = turnMetrics
				logger.Debug().Int("game", i+1).Str("winner", gameMetric.Winner).Int("turns", gameMetric.TotalTurns).Msg("Completed game")
			}
		}()
	}
	wg.Wait()

	result := Result{
		Settings: settings,
		Games:    games,
		Elapsed:  time.Since(start),
	}
	for i, tm := range turns {
		for _, t := range tm {
			result.Turns = append(result.Turns, metrics.TurnRecord{Game: i + 1, TurnMetric: t})
		}
	}
	logger.Info().Str("experiment", cfg.Name).Dur("elapsed", result.Elapsed).Msg("Completed experiment")

	if cfg.OutDir == "" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	logger.Info().Str("dir", dir).Msg("Stored records")
	return result, nil
}

// runGame plays one game to completion.
func runGame(settings game.Settings, agentConfig AgentConfig, seed uint64, logger zerolog.Logger) (metrics.GameMetric, []metrics.TurnMetric) {
	roller := dice.New(seed)
	a, err := agentConfig.New(roller)
	if err != nil {
		panic(fmt.Sprintf("agent checked before the run: %v", err))
	}
	collector := metrics.NewCollector()
	e := engine.New(
		engine.WithRoller(roller),
		engine.WithAgent(a),
		engine.WithMetrics(collector),
		engine.WithLogger(logger.Level(zerolog.WarnLevel)),
	)
	e.InitializeGame(settings)
	if err := e.ProcessAITurns(); err != nil {
		panic(fmt.Sprintf("game with seed %d did not start: %v", seed, err))
	}

	winner := ""
	if p, ok := e.Winner(); ok {
		winner = p.Name
	}
	return collector.Complete(winner), collector.Turns()
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSettings(result.Settings); err != nil {
		return "", fmt.Errorf("failed to store settings: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteTurnRecords(result.Turns); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	return writer.Dir(), nil
}
