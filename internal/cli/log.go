// Package cli implements the cliquer command-line interface.
//
// This package provides commands for counting prefixed triangles, finding a
// maximum clique, rendering the graph, and serving the analyses over HTTP.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - triangles: Count triangles with a member matching a prefix
//   - clique: Find a maximum clique and print its password
//   - run: Select the analysis by part name (part1 or part2)
//   - render: Draw the graph with the maximum clique highlighted
//   - stats: Summarize node and edge counts and the degree distribution
//   - serve: Run the HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// Logs go to stderr; results go to stdout.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// timeFormat renders log timestamps as "HH:MM:SS.cc".
const timeFormat = "15:04:05.00"

// newLogger returns a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
}

// progress logs how long a step took, e.g. "Rendered svg (1.234s)".
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type loggerKey struct{}

// withLogger attaches l to ctx for commands further down the call chain.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when commands run without PersistentPreRunE (tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
