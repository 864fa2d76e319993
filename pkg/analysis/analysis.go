// Package analysis runs the clique analyses over a built graph for the CLI
// and the HTTP server.
//
// Both entry points go through the same [Runner] so that caching, logging
// and metrics behave identically no matter how an analysis was requested.
//
// # Architecture
//
// An analysis run has two stages:
//
//  1. Load: parse an edge list and build the graph ([Runner.Load])
//  2. Run: count prefixed triangles or search for a maximum clique ([Runner.Run])
//
// Only the final [Result] of stage 2 is cached, keyed by the graph's content
// hash together with the mode and prefix.
//
// # Usage
//
//	runner := analysis.NewRunner(c, nil, logger)
//	g, err := runner.Load(ctx, os.Stdin)
//	if err != nil {
//	    return err
//	}
//	res, err := runner.Run(ctx, g, analysis.Options{Mode: analysis.ModeClique})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Password)
package analysis

import (
	"strconv"
	"time"

	"github.com/matzehuels/cliquer/pkg/cache"
	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/errors"
)

// =============================================================================
// Modes
// =============================================================================

const (
	// ModeTriangles counts triangles with at least one prefixed member.
	ModeTriangles = "triangles"

	// ModeClique searches for a maximum clique.
	ModeClique = "clique"
)

// Part names accepted as aliases for the two modes.
const (
	PartOne = "part1"
	PartTwo = "part2"
)

// DefaultCacheTTL is how long a cached result stays valid.
const DefaultCacheTTL = 24 * time.Hour

// ParseMode resolves a mode name or part alias to a canonical mode.
func ParseMode(s string) (string, error) {
	switch s {
	case ModeTriangles, PartOne:
		return ModeTriangles, nil
	case ModeClique, PartTwo:
		return ModeClique, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode,
		"unknown mode %q (must be one of: %s, %s, %s, %s)", s, ModeTriangles, ModeClique, PartOne, PartTwo)
}

// =============================================================================
// Options
// =============================================================================

// Options configures one analysis run.
type Options struct {
	Mode   string `json:"mode"`
	Prefix string `json:"prefix,omitempty"` // triangles only; empty matches every node

	Parallel bool `json:"parallel,omitempty"` // clique only
	Workers  int  `json:"workers,omitempty"`  // 0 means GOMAXPROCS

	// Runtime options (not serialized)
	Refresh  bool          `json:"-"` // skip the cache lookup, still store the result
	CacheTTL time.Duration `json:"-"`
}

// ValidateAndSetDefaults canonicalizes Mode and checks the remaining fields.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	mode, err := ParseMode(o.Mode)
	if err != nil {
		return err
	}
	o.Mode = mode

	if o.Mode == ModeTriangles {
		if err := errors.ValidatePrefix(o.Prefix); err != nil {
			return err
		}
	} else {
		o.Prefix = ""
	}

	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be >= 0, got %d", o.Workers)
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return nil
}

// KeyOpts returns the cache key options for this run. Parallel and Workers
// do not change the result and are left out.
func (o *Options) KeyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{Mode: o.Mode, Prefix: o.Prefix}
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of one analysis run. It is also the HTTP response
// body and the cached representation.
type Result struct {
	Mode   string `json:"mode"`
	Prefix string `json:"prefix,omitempty"`

	// Count is the number of matching triangles, or the clique size.
	Count int `json:"count"`

	// Triangles holds the sorted canonical triangle keys (triangles mode).
	Triangles []string `json:"triangles,omitempty"`

	// Clique and Password describe the maximum clique (clique mode).
	Clique   clique.Clique `json:"clique,omitempty"`
	Password string        `json:"password,omitempty"`

	Stats  Stats `json:"stats"`
	Cached bool  `json:"cached"`
}

// Answer returns the single-line answer: the count for triangles, the
// password for a clique.
func (r *Result) Answer() string {
	if r.Mode == ModeClique {
		return r.Password
	}
	return strconv.Itoa(r.Count)
}

// Stats contains graph size and timing for a run.
type Stats struct {
	NodeCount int           `json:"nodes"`
	EdgeCount int           `json:"edges"`
	Duration  time.Duration `json:"duration_ns"`
}
