package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/errors"
	"github.com/matzehuels/cliquer/pkg/render/nodelink"
)

const (
	highlightClique = "clique" // fill the maximum clique
	highlightNone   = "none"   // plain diagram
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path, "-" for stdout
	format    string // dot, svg or png; inferred from output when empty
	highlight string // clique or none
	title     string // diagram title
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{highlight: highlightClique}

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render the graph with its maximum clique highlighted",
		Example: `  cliquer render input.txt -o lan.svg
  cliquer render input.txt -o lan.png --title "LAN party"
  cliquer render input.txt -o - --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			if opts.highlight != highlightClique && opts.highlight != highlightNone {
				return errors.New(errors.ErrCodeInvalidInput,
					"invalid highlight %q (must be one of: %s, %s)", opts.highlight, highlightClique, highlightNone)
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			g, err := loadGraph(cmd, runner, args[0])
			if err != nil {
				return err
			}

			var dotOpts nodelink.Options
			dotOpts.Title = opts.title
			cached := false
			if opts.highlight == highlightClique {
				res, err := runner.Run(ctx, g, c.analysisOptions(analysis.ModeClique))
				if err != nil {
					return err
				}
				dotOpts.Highlight = res.Clique
				cached = res.Cached
			}

			prog := newProgress(logger)
			data, err := nodelink.Render(ctx, nodelink.ToDOT(g, dotOpts), format)
			if err != nil {
				return err
			}

			if opts.output == stdinArg {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
			}
			prog.done("Rendered " + format)
			out := cmd.OutOrStdout()
			printSuccess(out, "Rendered %d nodes", g.NodeCount())
			printFile(out, opts.output)
			printStats(out, g.NodeCount(), g.EdgeCount(), cached)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png (default from output extension)")
	cmd.Flags().StringVar(&opts.highlight, "highlight", opts.highlight, "nodes to highlight: clique or none")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// resolveFormat returns the explicit format, or the one implied by the
// output file extension, or svg.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" || output == stdinArg {
			format = nodelink.FormatSVG
		}
	}
	switch format {
	case nodelink.FormatDOT, nodelink.FormatSVG, nodelink.FormatPNG:
		return format, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported,
		"unsupported format %q (must be one of: %s, %s, %s)", format, nodelink.FormatDOT, nodelink.FormatSVG, nodelink.FormatPNG)
}
