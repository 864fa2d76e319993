package graph

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cliquer/pkg/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    Edge
		wantErr bool
	}{
		{"kh-tc", Edge{"kh", "tc"}, false},
		{"  ta-b  ", Edge{"ta", "b"}, false},
		{"a-b\r", Edge{"a", "b"}, false},
		{"a b-c", Edge{"a b", "c"}, false},
		{"a\t-b", Edge{"a\t", "b"}, false},
		{strings.Repeat("n", 300) + "-b", Edge{strings.Repeat("n", 300), "b"}, false},
		{"ünï-κα", Edge{"ünï", "κα"}, false},

		{"ab", Edge{}, true},
		{"a-b-c", Edge{}, true},
		{"a-", Edge{}, true},
		{"-b", Edge{}, true},
		{"-", Edge{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	input := "kh-tc\nqp-kh\n\nde-cg\n"

	edges, err := ParseString(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Edge{{"kh", "tc"}, {"qp", "kh"}, {"de", "cg"}}
	if !slices.Equal(edges, want) {
		t.Errorf("Parse() = %v, want %v", edges, want)
	}
}

func TestParseOpaqueNodeIDs(t *testing.T) {
	long := strings.Repeat("x", 300)
	input := "a b-c\na\t-b\n" + long + "-c\n"

	edges, err := ParseString(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Edge{{"a b", "c"}, {"a\t", "b"}, {long, "c"}}
	if !slices.Equal(edges, want) {
		t.Errorf("Parse() = %v, want %v", edges, want)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n  \n"} {
		edges, err := ParseString(input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
		}
		if len(edges) != 0 {
			t.Errorf("Parse(%q) = %v, want no edges", input, edges)
		}
	}
}

func TestParseMalformedAbortsWithLineNumber(t *testing.T) {
	input := "a-b\nb-c\nbroken\nc-a\n"

	edges, err := ParseString(input)
	if err == nil {
		t.Fatal("Parse() should fail on a malformed line")
	}
	if edges != nil {
		t.Errorf("Parse() returned partial result %v", edges)
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("a-b\nb-c\nc-a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("Load() = %d nodes, %d edges; want 3, 3", g.NodeCount(), g.EdgeCount())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
