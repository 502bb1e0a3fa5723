package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zmalkmus/maxclique/clique"
	"github.com/zmalkmus/maxclique/graphfile"
)

// newSolveCmd creates the solve command: read a graph file, run the
// Bron–Kerbosch engine, print the maximum clique.
func newSolveCmd() *cobra.Command {
	var pivot bool

	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Find a maximum clique in an edge-list graph file",
		Long: `Find a maximum clique in an edge-list graph file.

The search is exact and runs to completion; expect exponential time on
dense or adversarial instances. Interrupt with Ctrl-C to abort.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], pivot)
		},
	}

	cmd.Flags().BoolVar(&pivot, "pivot", false, "enable pivot pruning (same result, smaller search tree)")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, pivot bool) error {
	ctx := cmd.Context()
	best, err := solveFile(ctx, path, pivot)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "max clique:", best)
	fmt.Fprintln(cmd.OutOrStdout(), "size:", len(best))

	return nil
}

// solveFile loads path and runs the engine under ctx.
func solveFile(ctx context.Context, path string, pivot bool) ([]int, error) {
	logger := loggerFromContext(ctx)

	g, err := graphfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	logger.Debug("graph loaded", "vertices", g.Order(), "edges", g.Size())

	opts := []clique.Option{clique.WithContext(ctx)}
	if pivot {
		opts = append(opts, clique.WithPivot())
	}

	p := newProgress(logger)
	best, err := clique.FindMaxClique(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	p.done(fmt.Sprintf("searched %d vertices", g.Order()))

	return best, nil
}
