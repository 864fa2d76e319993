package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
)

// partEnvs are consulted in order when --part is not given. The lowercase
// form is the one existing puzzle scripts export.
var partEnvs = []string{"PART", "part"}

// runCommand creates the run command, which selects the analysis by part name.
func (c *CLI) runCommand() *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "run <file|->",
		Short: "Run part1 (prefixed triangle count) or part2 (maximum clique)",
		Long: `Run one analysis selected by part name and print its answer:

  part1  number of triangles with a member starting with the configured prefix
  part2  password of a maximum clique (members sorted, comma separated)

Without --part the PART (or lowercase part) environment variable is used, and
part2 when neither is set.`,
		Example: `  cliquer run --part part1 input.txt
  PART=part1 cliquer run input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("part") {
				part = partFromEnv()
			}
			mode, err := analysis.ParseMode(part)
			if err != nil {
				return err
			}

			res, _, err := c.analyze(cmd, args[0], c.analysisOptions(mode))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Answer())
			return nil
		},
	}

	cmd.Flags().StringVar(&part, "part", analysis.PartTwo, "part to run (part1 or part2)")

	return cmd
}

func partFromEnv() string {
	for _, name := range partEnvs {
		if p := os.Getenv(name); p != "" {
			return p
		}
	}
	return analysis.PartTwo
}
