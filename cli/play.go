package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"conquest/dice"
	"conquest/engine"
	"conquest/experiments"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	flags := &settingsFlags{}
	agentConfig := experiments.AgentConfig{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play reads one command per line from standard input and prints the board
after each. Type "help" for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := opts.config.Settings
			seed := opts.config.Seed
			flags.apply(cmd, &settings, &seed)

			roller := dice.NewTimeSeeded()
			if seed != 0 {
				roller = dice.New(seed)
			}
			a, err := agentConfig.New(roller)
			if err != nil {
				return err
			}
			e := engine.New(
				engine.WithRoller(roller),
				engine.WithAgent(a),
				engine.WithLogger(log.Logger),
			)
			e.InitializeGame(settings)
			if err := e.ProcessAITurns(); err != nil {
				return err
			}

			return NewShell(e, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
	flags.register(cmd)
	registerAgentFlags(cmd, &agentConfig)

	return cmd
}
