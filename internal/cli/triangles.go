package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/clique"
)

// trianglesCommand creates the triangles command.
func (c *CLI) trianglesCommand() *cobra.Command {
	var (
		prefix  string
		list    bool
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "triangles <file|->",
		Short: "Count triangles with at least one member matching a prefix",
		Long: `Count the triangles (sets of three pairwise connected nodes) in which at least
one node identifier starts with the prefix. Each triangle is counted once no matter
how many of its members match. An empty prefix counts every triangle.`,
		Example: `  cliquer triangles input.txt
  cliquer triangles --prefix t --list input.txt
  cat input.txt | cliquer triangles -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.analysisOptions(analysis.ModeTriangles)
			if cmd.Flags().Changed("prefix") {
				opts.Prefix = prefix
			}
			opts.Refresh = refresh

			res, _, err := c.analyze(cmd, args[0], opts)
			if err != nil {
				return err
			}
			if !list {
				res.Triangles = nil
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, res)
			case list:
				for _, key := range res.Triangles {
					fmt.Fprintln(out, key)
				}
			default:
				fmt.Fprintln(out, res.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", clique.DefaultPrefix, "node prefix that qualifies a triangle (empty matches all)")
	cmd.Flags().BoolVar(&list, "list", false, "print the triangles instead of the count")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}
