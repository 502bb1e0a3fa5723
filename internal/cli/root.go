package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the maxclique CLI and returns an error if any command fails.
//
// The root command wires the solve, crossval, and gen subcommands and
// configures logging from the --verbose flag: info level by default, debug
// with -v. The logger is attached to the command context and accessible to
// all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "maxclique",
		Short:        "maxclique finds maximum cliques in undirected graphs",
		Long: `maxclique is an exact maximum-clique solver built on Bron–Kerbosch
backtracking, with cross-validation against an independent gonum-backed
oracle and a random-instance generator.

Graph files use the edge-list format: an "n m" header line followed by
one "u v w" row per edge (the weight column is ignored).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newCrossvalCmd())
	root.AddCommand(newGenCmd())

	return root.ExecuteContext(ctx)
}
