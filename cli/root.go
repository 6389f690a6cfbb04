// Package cli is the conquest command line: an interactive text game and a
// batch simulator.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"conquest/config"
)

type rootOptions struct {
	verbose bool
	config  config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "conquest",
		Short: "Turn-based territory conquest on a grid",
		Long: `conquest is a turn-based territory game. Players start with a single
capital, attack neighbouring cells to grow, and are eliminated when they lose
their last capital.

Settings are read from CONQUEST_* environment variables and can be overridden
with flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newSimulateCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}
