package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/buildinfo"
	"github.com/matzehuels/cliquer/pkg/cache"
	"github.com/matzehuels/cliquer/pkg/metrics"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cliquer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Set by persistent flags and resolved in PersistentPreRunE.
	configPath  string
	noCache     bool
	dumpMetrics bool
	config      *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cliquer finds triangles and maximum cliques in undirected graphs",
		Long: `Cliquer reads an undirected graph as an edge list, one "<node>-<node>" pair per line,
and answers two questions about it: how many triangles contain a node with a given
prefix, and which nodes form a maximum clique.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			if c.dumpMetrics {
				metrics.Install()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.dumpMetrics {
				return metrics.WriteText(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cliquer/config.toml)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")
	flags.BoolVar(&c.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	// Register all subcommands
	root.AddCommand(c.trianglesCommand())
	root.AddCommand(c.cliqueCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an analysis runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context) (*analysis.Runner, error) {
	cc, keyer, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.NewRunner(cc, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, cache.Keyer, error) {
	cfg := c.config.Cache
	if c.noCache {
		return cache.NewNullCache(), nil, nil
	}

	switch cfg.Backend {
	case backendFile:
		dir, err := c.fileCacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil, nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using file cache", "dir", dir)
		return fc, nil, nil

	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
			return cache.NewNullCache(), nil, nil
		}
		c.Logger.Debug("using redis cache", "addr", cfg.RedisAddr)
		return rc, cache.NewScopedKeyer(nil, cfg.KeyPrefix), nil
	}
	return cache.NewNullCache(), nil, nil
}

// analysisOptions returns options seeded from the config file.
func (c *CLI) analysisOptions(mode string) analysis.Options {
	return analysis.Options{
		Mode:     mode,
		Prefix:   c.config.Analysis.Prefix,
		Parallel: c.config.Analysis.Parallel,
		Workers:  c.config.Analysis.Workers,
		CacheTTL: c.config.Cache.TTL.Duration,
	}
}

// =============================================================================
// Paths
// =============================================================================

// fileCacheDir returns cache.dir from the config, or the XDG default.
func (c *CLI) fileCacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/cliquer/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
