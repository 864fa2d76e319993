// Package cache stores finished analysis results keyed by graph content.
//
// Only final results are cached (a triangle count or a maximum clique for a
// given graph, mode and prefix); nothing from inside a search is persisted.
// Caching is opt-in: the CLI defaults to [NullCache].
//
// # Backends
//
//   - [NullCache]: stores nothing
//   - [FileCache]: one JSON entry per key under a directory (CLI use)
//   - [RedisCache]: shared cache for the HTTP server
//
// # Keys
//
// Keys are produced by a [Keyer] from the graph's content hash and the
// analysis options, so reordering the lines of an input file still hits the
// same entry:
//
//	key := cache.NewDefaultKeyer().ResultKey(g.Hash(), cache.ResultKeyOpts{
//	    Mode:   "triangles",
//	    Prefix: "t",
//	})
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
