package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/errors"
	"github.com/matzehuels/cliquer/pkg/graph"
)

// cliqueCommand creates the clique command.
func (c *CLI) cliqueCommand() *cobra.Command {
	var (
		parallel bool
		workers  int
		verify   bool
		all      bool
		asJSON   bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "clique <file|->",
		Short: "Find a maximum clique",
		Long: `Find a largest set of nodes that are all connected to each other and print its
members sorted and joined by commas.

The search is exact (Bron–Kerbosch). --parallel spreads the top level of the search
over several goroutines and returns the same clique.`,
		Example: `  cliquer clique input.txt
  cliquer clique --parallel --workers 8 input.txt
  cliquer clique --all input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return c.printMaximalCliques(cmd, args[0])
			}

			opts := c.analysisOptions(analysis.ModeClique)
			if cmd.Flags().Changed("parallel") {
				opts.Parallel = parallel
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			opts.Refresh = refresh

			res, g, err := c.analyze(cmd, args[0], opts)
			if err != nil {
				return err
			}
			if verify {
				if err := verifyClique(g, res.Clique); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Info("verified clique", "size", res.Count)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Password)
			return nil
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "search top-level branches concurrently")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the result is a maximal clique of the graph")
	cmd.Flags().BoolVar(&all, "all", false, "print every maximal clique, one per line")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}

// verifyClique checks that c is a clique of g that no node extends.
func verifyClique(g *graph.Graph, c clique.Clique) error {
	if err := clique.Validate(g, c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "verify clique")
	}
	if !clique.IsMaximal(g, c) {
		return errors.New(errors.ErrCodeInternal, "verify clique: %s is not maximal", c.Password())
	}
	return nil
}

// printMaximalCliques prints every maximal clique in search order.
func (c *CLI) printMaximalCliques(cmd *cobra.Command, arg string) error {
	g, err := loadGraph(cmd, analysis.NewRunner(nil, nil, c.Logger), arg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := 0
	clique.MaximalCliques(g, func(cl clique.Clique) bool {
		fmt.Fprintln(out, cl.Password())
		count++
		return cmd.Context().Err() == nil
	})
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("enumerated maximal cliques", "count", count)
	return nil
}
