package cli

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"conquest/experiments"
	"conquest/utils"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	flags := &settingsFlags{}
	agentConfig := experiments.AgentConfig{}
	var (
		games   int
		workers int
		name    string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of AI-only games and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := experiments.DefaultConfig()
			cfg.Settings = opts.config.Settings
			if opts.config.Seed != 0 {
				cfg.Seed = opts.config.Seed
			}
			flags.apply(cmd, &cfg.Settings, &cfg.Seed)
			cfg.Name = name
			cfg.Games = games
			cfg.Workers = utils.Clamp(workers, 1, runtime.NumCPU())
			cfg.Agent = agentConfig
			cfg.OutDir = out
			cfg.Logger = &log.Logger

			result, err := experiments.Run(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Games: %d (%d AI players on %dx%d)\n",
				len(result.Games), result.Settings.AIPlayers, result.Settings.GridWidth, result.Settings.GridHeight)
			fmt.Fprintf(w, "Mean turns: %.1f\n", result.MeanTurns())
			fmt.Fprintf(w, "Throughput: %.1f games/s\n", result.Throughput())
			if result.Dir != "" {
				fmt.Fprintf(w, "Records: %s\n", result.Dir)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WINNER\tGAMES")
			for _, win := range result.Wins() {
				winner := win.Winner
				if winner == "" {
					winner = "(nobody)"
				}
				fmt.Fprintf(tw, "%s\t%d\n", winner, win.Games)
			}
			return tw.Flush()
		},
	}
	flags.register(cmd)
	registerAgentFlags(cmd, &agentConfig)
	cmd.Flags().IntVar(&games, "games", experiments.DefaultConfig().Games, "Number of games")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Games played in parallel")
	cmd.Flags().StringVar(&name, "name", experiments.DefaultConfig().Name, "Experiment name, used in the records path")
	cmd.Flags().StringVar(&out, "out", "", "Directory to write CSV records to")

	return cmd
}
