// Package metrics defines Prometheus metrics for cliquer and implements the
// observability hooks on top of them.
//
// All metrics are registered with [Registry]. The CLI installs the hooks and
// dumps the series on exit:
//
//	metrics.Install()
//	defer metrics.WriteText(os.Stderr)
package metrics

import (
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Registry holds every cliquer metric.
var Registry = prometheus.NewRegistry()

var (
	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cliquer_parse_duration_seconds",
			Help:    "Edge list parse and build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ParseErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cliquer_parse_errors_total",
			Help: "Edge lists rejected as malformed or unreadable",
		},
	)

	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliquer_graph_nodes",
			Help: "Node count of the most recently loaded graph",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliquer_graph_edges",
			Help: "Edge count of the most recently loaded graph",
		},
	)

	AnalysesInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cliquer_analyses_in_flight",
			Help: "Analyses currently running",
		},
		[]string{"mode"},
	)

	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cliquer_analyses_total",
			Help: "Completed analyses by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cliquer_analysis_duration_seconds",
			Help:    "Analysis duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"mode"},
	)

	ResultSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cliquer_result_size",
			Help: "Triangle count or clique size of the most recent analysis",
		},
		[]string{"mode"},
	)

	CacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cliquer_cache_requests_total",
			Help: "Result cache lookups by mode and result (hit or miss)",
		},
		[]string{"mode", "result"},
	)

	CacheBytesWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cliquer_cache_bytes_written_total",
			Help: "Bytes written to the result cache",
		},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cliquer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cliquer_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	Registry.MustRegister(
		ParseDuration, ParseErrorsTotal, GraphNodes, GraphEdges,
		AnalysesInFlight, AnalysesTotal, AnalysisDuration, ResultSize,
		CacheRequestsTotal, CacheBytesWritten,
		RequestDuration, RequestsTotal,
		collectors.NewGoCollector(),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// WriteText writes every cliquer metric family to w in the text format.
// Go runtime series are left out.
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !isCliquer(mf.GetName()) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func isCliquer(name string) bool {
	const prefix = "cliquer_"
	return strings.HasPrefix(name, prefix)
}
