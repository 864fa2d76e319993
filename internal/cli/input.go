package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/errors"
	"github.com/matzehuels/cliquer/pkg/graph"
)

// stdinArg selects standard input as the edge list source.
const stdinArg = "-"

// openInput opens the edge list named by arg; "-" is the command's stdin.
func openInput(cmd *cobra.Command, arg string) (io.ReadCloser, error) {
	if arg == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", arg)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", arg)
	}
	return f, nil
}

// loadGraph reads and builds the graph named by arg through runner.
func loadGraph(cmd *cobra.Command, runner *analysis.Runner, arg string) (*graph.Graph, error) {
	rc, err := openInput(cmd, arg)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return runner.Load(cmd.Context(), rc)
}

// analyze loads the input and runs one analysis with the configured cache.
func (c *CLI) analyze(cmd *cobra.Command, arg string, opts analysis.Options) (*analysis.Result, *graph.Graph, error) {
	runner, err := c.newRunner(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	defer runner.Close()

	g, err := loadGraph(cmd, runner, arg)
	if err != nil {
		return nil, nil, err
	}
	stop := func() {}
	if opts.Mode == analysis.ModeClique || opts.Mode == analysis.PartTwo {
		stop = startSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching for a maximum clique")
	}
	res, err := runner.Run(cmd.Context(), g, opts)
	stop()
	if err != nil {
		return nil, nil, err
	}
	return res, g, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
