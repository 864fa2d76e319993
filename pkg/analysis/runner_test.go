package analysis

import (
	"bytes"
	"context"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cliquer/pkg/cache"
	"github.com/matzehuels/cliquer/pkg/errors"
	"github.com/matzehuels/cliquer/pkg/graph"
	"github.com/matzehuels/cliquer/pkg/observability"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.sets++
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func loadLAN(t *testing.T, r *Runner) *graph.Graph {
	t.Helper()
	f, err := os.Open("testdata/lan.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := r.Load(context.Background(), f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return g
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Fatalf("NewRunner(nil, nil, nil) left nil fields: %+v", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestRunnerLoadRejectsMalformedInput(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Load(context.Background(), strings.NewReader("kh-tc\nbogus\n"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRunnerTriangles(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g := loadLAN(t, r)

	tests := []struct {
		prefix string
		want   int
	}{
		{"t", 7},
		{"", 12},
		{"zz", 0},
	}
	for _, tt := range tests {
		res, err := r.Run(context.Background(), g, Options{Mode: PartOne, Prefix: tt.prefix})
		if err != nil {
			t.Fatalf("Run(prefix=%q): %v", tt.prefix, err)
		}
		if res.Count != tt.want || len(res.Triangles) != tt.want {
			t.Errorf("Run(prefix=%q) count = %d (%d keys), want %d", tt.prefix, res.Count, len(res.Triangles), tt.want)
		}
		if res.Mode != ModeTriangles {
			t.Errorf("Mode = %q, want %q", res.Mode, ModeTriangles)
		}
		if !slices.IsSorted(res.Triangles) {
			t.Errorf("Triangles not sorted: %v", res.Triangles)
		}
	}
}

func TestRunnerClique(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g := loadLAN(t, r)

	for _, parallel := range []bool{false, true} {
		res, err := r.Run(context.Background(), g, Options{Mode: ModeClique, Parallel: parallel, Workers: 2})
		if err != nil {
			t.Fatalf("Run(parallel=%v): %v", parallel, err)
		}
		if res.Password != "co,de,ka,ta" {
			t.Errorf("Run(parallel=%v) password = %q, want %q", parallel, res.Password, "co,de,ka,ta")
		}
		if res.Count != 4 {
			t.Errorf("Run(parallel=%v) count = %d, want 4", parallel, res.Count)
		}
		if res.Stats.NodeCount != 16 || res.Stats.EdgeCount != 32 {
			t.Errorf("Stats = %+v, want 16 nodes / 32 edges", res.Stats)
		}
	}
}

func TestRunnerEmptyGraph(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g, err := r.Load(context.Background(), strings.NewReader("\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(context.Background(), g, Options{Mode: ModeClique})
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || res.Password != "" {
		t.Errorf("empty graph result = %+v, want empty clique", res)
	}
}

func TestRunnerCaching(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	g := loadLAN(t, r)
	ctx := context.Background()

	first, err := r.Run(ctx, g, Options{Mode: ModeClique})
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first run should not be cached")
	}
	if mc.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", mc.sets)
	}

	second, err := r.Run(ctx, g, Options{Mode: ModeClique, Parallel: true})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second run should be served from cache")
	}
	if second.Password != first.Password {
		t.Errorf("cached password = %q, want %q", second.Password, first.Password)
	}

	// A different prefix is a different key.
	tri, err := r.Run(ctx, g, Options{Mode: ModeTriangles, Prefix: "t"})
	if err != nil {
		t.Fatal(err)
	}
	if tri.Cached {
		t.Error("triangles run should not hit the clique entry")
	}

	refreshed, err := r.Run(ctx, g, Options{Mode: ModeClique, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.Cached {
		t.Error("refresh should bypass the cache")
	}
	if mc.sets != 3 {
		t.Errorf("cache sets = %d, want 3", mc.sets)
	}
}

func TestRunnerCorruptCacheEntry(t *testing.T) {
	mc := newMemCache()
	var logs bytes.Buffer
	r := NewRunner(mc, nil, log.NewWithOptions(&logs, log.Options{Level: log.WarnLevel}))
	g := loadLAN(t, r)

	opts := Options{Mode: ModeTriangles, Prefix: "t"}
	_ = opts.ValidateAndSetDefaults()
	key := r.Keyer.ResultKey(g.Hash(), opts.KeyOpts())
	_ = mc.Set(context.Background(), key, []byte("not json"), 0)

	res, err := r.Run(context.Background(), g, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached || res.Count != 7 {
		t.Errorf("Run over corrupt entry = %+v, want fresh count 7", res)
	}
	if !strings.Contains(logs.String(), "discarding corrupt cache entry") {
		t.Errorf("expected a warning for the corrupt entry, logs = %q", logs.String())
	}
}

func TestRunnerCancelledParallel(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g := loadLAN(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, g, Options{Mode: ModeClique, Parallel: true}); err == nil {
		t.Error("Run with cancelled context should fail")
	}
}

type recordingHooks struct {
	observability.NoopAnalysisHooks
	mu        sync.Mutex
	parsed    int
	started   []string
	completed []int
}

func (h *recordingHooks) OnParseComplete(context.Context, int, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.parsed++
}

func (h *recordingHooks) OnAnalyzeStart(_ context.Context, mode string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, mode)
}

func (h *recordingHooks) OnAnalyzeComplete(_ context.Context, _ string, size int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, size)
}

func TestRunnerFiresHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetAnalysisHooks(h)
	defer observability.Reset()

	r := NewRunner(nil, nil, quietLogger())
	g := loadLAN(t, r)
	if _, err := r.Run(context.Background(), g, Options{Mode: ModeTriangles, Prefix: "t"}); err != nil {
		t.Fatal(err)
	}

	if h.parsed != 1 {
		t.Errorf("OnParseComplete calls = %d, want 1", h.parsed)
	}
	if !slices.Equal(h.started, []string{ModeTriangles}) {
		t.Errorf("OnAnalyzeStart modes = %v", h.started)
	}
	if !slices.Equal(h.completed, []int{7}) {
		t.Errorf("OnAnalyzeComplete sizes = %v, want [7]", h.completed)
	}
}
