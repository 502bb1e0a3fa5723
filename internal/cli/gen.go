package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zmalkmus/maxclique/builder"
	"github.com/zmalkmus/maxclique/graphfile"
)

// newGenCmd creates the gen command: sample a random G(n,p) instance and
// write it in the edge-list format.
func newGenCmd() *cobra.Command {
	var (
		n    int
		p    float64
		seed int64
		out  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random G(n,p) graph file",
		Long: `Generate a random Erdős–Rényi G(n,p) graph and write it in the
edge-list format. The same seed reproduces the identical graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, n, p, seed, out)
		},
	}

	cmd.Flags().IntVar(&n, "n", 1000, "number of vertices")
	cmd.Flags().Float64Var(&p, "p", 0.01, "edge probability in [0,1]")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	return cmd
}

func runGen(cmd *cobra.Command, n int, p float64, seed int64, out string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := builder.RandomSparse(n, p, builder.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Debug("graph generated", "vertices", g.Order(), "edges", g.Size(), "seed", seed)

	if out == "" {
		return graphfile.Write(cmd.OutOrStdout(), g)
	}
	if err = graphfile.WriteFile(out, g); err != nil {
		return err
	}
	logger.Info("graph written", "path", out, "vertices", g.Order(), "edges", g.Size())

	return nil
}
