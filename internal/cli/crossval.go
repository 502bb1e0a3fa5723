package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zmalkmus/maxclique/clique"
	"github.com/zmalkmus/maxclique/crossval"
	"github.com/zmalkmus/maxclique/graphfile"
	"github.com/zmalkmus/maxclique/oracle"
)

// newCrossvalCmd creates the crossval command: solve with both the engine
// and the gonum oracle, compare, and report. A mismatch exits non-zero —
// for a correct build it should never happen.
func newCrossvalCmd() *cobra.Command {
	var pivot bool

	cmd := &cobra.Command{
		Use:   "crossval <graph-file>",
		Short: "Solve with engine and oracle, report agreement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossval(cmd, args[0], pivot)
		},
	}

	cmd.Flags().BoolVar(&pivot, "pivot", false, "enable pivot pruning in the engine")

	return cmd
}

func runCrossval(cmd *cobra.Command, path string, pivot bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := graphfile.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", path, err)
	}
	logger.Debug("graph loaded", "vertices", g.Order(), "edges", g.Size())

	engineOpts := []clique.Option{clique.WithContext(ctx)}
	if pivot {
		engineOpts = append(engineOpts, clique.WithPivot())
	}

	rep, err := crossval.Run(g, oracle.MaxClique, crossval.WithCliqueOptions(engineOpts...))
	if err != nil {
		return fmt.Errorf("cross-validation: %w", err)
	}

	logger.Info("engine finished", "size", len(rep.EngineClique), "elapsed", rep.EngineElapsed)
	logger.Info("oracle finished", "size", len(rep.OracleClique), "elapsed", rep.OracleElapsed)

	fmt.Fprintln(cmd.OutOrStdout(), "engine clique:", rep.EngineClique)
	fmt.Fprintln(cmd.OutOrStdout(), "oracle clique:", rep.OracleClique)
	fmt.Fprintln(cmd.OutOrStdout(), rep.Outcome)

	if !rep.Outcome.Agree() {
		return fmt.Errorf("methods diverged: %s", rep.Outcome)
	}

	return nil
}
