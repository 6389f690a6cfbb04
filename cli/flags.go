package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"conquest/experiments"
	"conquest/game"
	"conquest/searcher"
)

type settingsFlags struct {
	width  int
	height int
	humans int
	ais    int
	seed   uint64
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Grid width (env: CONQUEST_GRID_WIDTH)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Grid height (env: CONQUEST_GRID_HEIGHT)")
	cmd.Flags().IntVar(&f.humans, "humans", 0, "Human players (env: CONQUEST_HUMANS)")
	cmd.Flags().IntVar(&f.ais, "ais", 0, "AI players (env: CONQUEST_AIS)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed, 0 for the clock (env: CONQUEST_SEED)")
}

// apply overrides settings and seed with the flags set on the command line.
func (f *settingsFlags) apply(cmd *cobra.Command, settings *game.Settings, seed *uint64) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		settings.GridWidth = f.width
	}
	if flags.Changed("height") {
		settings.GridHeight = f.height
	}
	if flags.Changed("humans") {
		settings.HumanPlayers = f.humans
	}
	if flags.Changed("ais") {
		settings.AIPlayers = f.ais
	}
	if flags.Changed("seed") {
		*seed = f.seed
	}
}

func registerAgentFlags(cmd *cobra.Command, agent *experiments.AgentConfig) {
	cmd.Flags().StringVar(&agent.Kind, "agent", experiments.ScriptedAgent, "AI player: scripted or montecarlo")
	cmd.Flags().IntVar(&agent.Goroutines, "agent-goroutines", runtime.NumCPU(), "Goroutines per montecarlo search")
	cmd.Flags().IntVar(&agent.Episodes, "agent-episodes", searcher.DefaultEpisodes, "Samples per attack in a montecarlo search")
}
