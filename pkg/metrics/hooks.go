package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/matzehuels/cliquer/pkg/observability"
)

// AnalysisHooks records parse and analysis events.
type AnalysisHooks struct{}

func (AnalysisHooks) OnParseComplete(_ context.Context, nodeCount, edgeCount int, duration time.Duration, err error) {
	ParseDuration.Observe(duration.Seconds())
	if err != nil {
		ParseErrorsTotal.Inc()
		return
	}
	GraphNodes.Set(float64(nodeCount))
	GraphEdges.Set(float64(edgeCount))
}

func (AnalysisHooks) OnAnalyzeStart(_ context.Context, mode string, _ int) {
	AnalysesInFlight.WithLabelValues(mode).Inc()
}

func (AnalysisHooks) OnAnalyzeComplete(_ context.Context, mode string, size int, duration time.Duration, err error) {
	AnalysesInFlight.WithLabelValues(mode).Dec()
	AnalysisDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if err != nil {
		AnalysesTotal.WithLabelValues(mode, "error").Inc()
		return
	}
	AnalysesTotal.WithLabelValues(mode, "ok").Inc()
	ResultSize.WithLabelValues(mode).Set(float64(size))
}

// CacheHooks records result cache traffic.
type CacheHooks struct{}

func (CacheHooks) OnCacheHit(_ context.Context, mode string) {
	CacheRequestsTotal.WithLabelValues(mode, "hit").Inc()
}

func (CacheHooks) OnCacheMiss(_ context.Context, mode string) {
	CacheRequestsTotal.WithLabelValues(mode, "miss").Inc()
}

func (CacheHooks) OnCacheSet(_ context.Context, _ string, size int) {
	CacheBytesWritten.Add(float64(size))
}

// HTTPHooks records served requests.
type HTTPHooks struct{}

func (HTTPHooks) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unknown"
	}
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
	RequestsTotal.WithLabelValues(method, route, status).Inc()
}

// Install registers all Prometheus hooks with the observability registry.
func Install() {
	observability.SetAnalysisHooks(AnalysisHooks{})
	observability.SetCacheHooks(CacheHooks{})
	observability.SetHTTPHooks(HTTPHooks{})
}

var (
	_ observability.AnalysisHooks = AnalysisHooks{}
	_ observability.CacheHooks    = CacheHooks{}
	_ observability.HTTPHooks     = HTTPHooks{}
)
