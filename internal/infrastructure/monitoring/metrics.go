package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by panel actions and research operations.
const (
	OutcomeSuccess     = "success"
	OutcomeNoSelection = "no_selection"
	OutcomeAPIError    = "api_error"
	OutcomeNetwork     = "network_error"
	OutcomeError       = "error"
)

// Metrics holds all Prometheus metrics for one process. Each instance owns
// its registry so several servers (and tests) can coexist.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Panel metrics
	PanelActions *prometheus.CounterVec

	// Research metrics
	ResearchCalls    *prometheus.CounterVec
	ResearchDuration *prometheus.HistogramVec

	startTime time.Time
}

// NewMetrics creates a metrics collector with the given namespace, e.g.
// "panel" or "research".
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		PanelActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panel_actions_total",
				Help:      "Panel actions by outcome",
			},
			[]string{"action", "outcome"},
		),
		ResearchCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "research_operations_total",
				Help:      "Research operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		ResearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "research_operation_duration_seconds",
				Help:      "Research operation duration in seconds",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Process uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPanelAction records the outcome of a summarize, suggest or save action.
func (m *Metrics) RecordPanelAction(action, outcome string) {
	if m == nil {
		return
	}
	m.PanelActions.WithLabelValues(action, outcome).Inc()
}

// RecordResearchCall records one research operation.
func (m *Metrics) RecordResearchCall(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ResearchCalls.WithLabelValues(operation, outcome).Inc()
	m.ResearchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
