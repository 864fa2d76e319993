package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/internal/server"
	"github.com/matzehuels/cliquer/pkg/metrics"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyses over HTTP",
		Long: `Start an HTTP server exposing the analyses:

  POST /v1/triangles?prefix=t   edge list in the body, triangle count as JSON
  POST /v1/clique?parallel=true edge list in the body, maximum clique as JSON
  GET  /healthz                 liveness and build information
  GET  /metrics                 Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			metrics.Install()
			srv := server.New(runner, c.Logger, server.Config{
				Addr:         cfg.Addr,
				MaxBodyBytes: cfg.MaxBodyBytes,
				Timeout:      cfg.Timeout.Duration,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return cmd
}
