package graph

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/matzehuels/cliquer/pkg/errors"
)

// Separator splits the two endpoints of an edge line.
const Separator = "-"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ParseLine parses one "<node>-<node>" line. Whitespace around the line is
// ignored; everything between it and the separator is an opaque node id.
// The line must split into exactly two non-empty tokens.
func ParseLine(line string) (Edge, error) {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, Separator)
	if len(parts) != 2 {
		return Edge{}, errors.New(errors.ErrCodeInvalidFormat,
			"expected <node>%s<node>, got %q", Separator, line)
	}
	if parts[0] == "" || parts[1] == "" {
		return Edge{}, errors.New(errors.ErrCodeInvalidFormat, "edge %q: empty node identifier", line)
	}
	return Edge{From: parts[0], To: parts[1]}, nil
}

// Parse reads an edge list from r. Blank lines are skipped. The first
// malformed line aborts the read with an INVALID_FORMAT error naming the
// line number; no partial result is returned.
func Parse(r io.Reader) ([]Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var edges []Edge
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			// A failed read can surface as a truncated final line.
			if rerr := sc.Err(); rerr != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, rerr, "read edge list")
			}
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: %s", lineNo, errors.UserMessage(err))
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read edge list")
	}
	return edges, nil
}

// ParseString is a convenience wrapper around [Parse] for in-memory input.
func ParseString(s string) ([]Edge, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile reads and parses the edge list at path. A path that does not
// exist yields FILE_NOT_FOUND; other open failures yield INVALID_INPUT.
func ReadFile(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Load reads the edge list at path and builds the graph in one step.
func Load(path string) (*Graph, error) {
	edges, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(edges), nil
}
