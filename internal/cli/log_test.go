package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		emit    func(*log.Logger)
		wantOut bool
	}{
		{"info at info", LogInfo, func(l *log.Logger) { l.Info("parsed edge list") }, true},
		{"debug at info", LogInfo, func(l *log.Logger) { l.Debug("using file cache") }, false},
		{"debug at debug", LogDebug, func(l *log.Logger) { l.Debug("using file cache") }, true},
		{"warn at info", LogInfo, func(l *log.Logger) { l.Warn("cache write failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("wrote output = %v, want %v", got, tt.wantOut)
			}
		})
	}
}

func TestNewLoggerKeyValues(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("analysis complete", "mode", "clique", "count", 4)

	out := buf.String()
	for _, want := range []string{"analysis complete", "mode=clique", "count=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.start = time.Now().Add(-1500 * time.Millisecond)

	p.done("Rendered svg")

	out := buf.String()
	if !strings.Contains(out, "Rendered svg (1.5") {
		t.Errorf("output = %q, want message with elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext(empty) should return log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, LogInfo)
	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Errorf("loggerFromContext = %p, want %p", got, l)
	}
}
