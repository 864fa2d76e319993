package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// Verify the expected structure: $HOME/.cache/cliquer
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "cliquer")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, "cliquer"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	out, err := execute(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(xdg, "cliquer"); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("output = %q, want empty-cache notice", out)
	}
}

func TestFileCacheRoundTripAndClear(t *testing.T) {
	cacheDir := t.TempDir()
	cfg := writeConfig(t, `
[cache]
backend = "file"
dir = "`+filepath.ToSlash(cacheDir)+`"
ttl = "1h"
`)

	first, err := execute(t, "", "--config", cfg, "clique", "--json", "testdata/lan.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first, `"cached": false`) {
		t.Errorf("first run should compute:\n%s", first)
	}

	second, err := execute(t, "", "--config", cfg, "clique", "--json", "testdata/lan.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(second, `"cached": true`) {
		t.Errorf("second run should hit the cache:\n%s", second)
	}

	noCache, err := execute(t, "", "--config", cfg, "--no-cache", "clique", "--json", "testdata/lan.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(noCache, `"cached": false`) {
		t.Errorf("--no-cache should bypass the cache:\n%s", noCache)
	}

	out, err := execute(t, "", "--config", cfg, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cleared 1 cached results") {
		t.Errorf("cache clear output = %q", out)
	}
}
