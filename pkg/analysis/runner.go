package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cliquer/pkg/cache"
	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/graph"
	"github.com/matzehuels/cliquer/pkg/observability"
)

// Runner executes analyses with result caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load parses an edge list from rd and builds the graph.
func (r *Runner) Load(ctx context.Context, rd io.Reader) (*graph.Graph, error) {
	start := time.Now()
	edges, err := graph.Parse(rd)
	if err != nil {
		observability.Analysis().OnParseComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	g := graph.Build(edges)
	elapsed := time.Since(start)
	observability.Analysis().OnParseComplete(ctx, g.NodeCount(), g.EdgeCount(), elapsed, nil)

	r.Logger.Info("parsed edge list",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", elapsed)
	return g, nil
}

// Run executes the analysis described by opts against g.
//
// A cached result is returned as-is with Cached set, unless opts.Refresh is
// true. Cache failures are logged and never fail the run.
func (r *Runner) Run(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	key := r.Keyer.ResultKey(g.Hash(), opts.KeyOpts())
	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key, opts.Mode); ok {
			r.Logger.Info("using cached result", "mode", opts.Mode, "count", res.Count)
			return res, nil
		}
	}

	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, opts.Mode, g.NodeCount())

	start := time.Now()
	res, err := r.analyze(ctx, g, opts)
	elapsed := time.Since(start)

	size := 0
	if res != nil {
		size = res.Count
	}
	hooks.OnAnalyzeComplete(ctx, opts.Mode, size, elapsed, err)
	if err != nil {
		return nil, err
	}

	res.Stats = Stats{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Duration:  elapsed,
	}

	r.Logger.Info("analysis complete",
		"mode", res.Mode,
		"count", res.Count,
		"duration", elapsed)

	r.store(ctx, key, res, opts)
	return res, nil
}

func (r *Runner) analyze(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	switch opts.Mode {
	case ModeTriangles:
		keys := clique.TrianglesWithPrefix(g, opts.Prefix)
		return &Result{
			Mode:      ModeTriangles,
			Prefix:    opts.Prefix,
			Count:     len(keys),
			Triangles: keys,
		}, nil

	case ModeClique:
		var c clique.Clique
		if opts.Parallel {
			var err error
			c, err = clique.MaxCliqueParallel(ctx, g, opts.Workers)
			if err != nil {
				return nil, err
			}
		} else {
			c = clique.MaxClique(g)
		}
		sorted := c.Sorted()
		return &Result{
			Mode:     ModeClique,
			Count:    sorted.Len(),
			Clique:   sorted,
			Password: sorted.Password(),
		}, nil
	}
	return nil, fmt.Errorf("unhandled mode %q", opts.Mode)
}

func (r *Runner) lookup(ctx context.Context, key, mode string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, mode)
		return nil, false
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		// Treat an unreadable entry as a miss and let the store overwrite it.
		r.Logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, mode)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, mode)
	res.Cached = true
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result, opts Options) {
	data, err := json.Marshal(res)
	if err != nil {
		r.Logger.Warn("encode result for cache", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, opts.Mode, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
