// Package cmd implements the mddbb CLI: a cobra root command plus a
// solve subcommand that runs one of the bundled example Problems and
// prints its incumbent, bounds, and gap. Uses a cobra root-command
// pattern: package-level flag vars, and a PersistentPreRunE that builds
// a logger from the config file's log level.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mddbb/cmd/mddbb/config"
	"github.com/katalvlaran/mddbb/logging"
)

var (
	cfgFile string
	logger  logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mddbb",
	Short: "Branch-and-bound solver over decision diagrams",
	Long: `mddbb compiles a discrete maximization problem into bounded-width
multi-valued decision diagrams and searches them best-first, reporting the
incumbent solution, its bounds, and the optimality gap.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		logger = logging.NewStdLogger(logging.ParseLevel(cfg.Log.Level), os.Stdout)

		return nil
	},
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a mddbb config file (default: ./mddbb.yaml)")
	rootCmd.AddCommand(solveCmd)
}
