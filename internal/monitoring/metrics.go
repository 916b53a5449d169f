package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	ToolCalls     *prometheus.CounterVec
	ToolDuration  *prometheus.HistogramVec
	Parses        *prometheus.CounterVec
	ParseDuration *prometheus.HistogramVec
	Lookups       *prometheus.CounterVec
}

// NewMetrics creates a metrics collector registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmldoc_tool_calls_total",
				Help: "Total number of document tool calls",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "htmldoc_tool_duration_seconds",
				Help:    "Document tool call duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"tool"},
		),
		Parses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmldoc_parses_total",
				Help: "Total number of parse calls",
			},
			[]string{"mode", "status"},
		),
		ParseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "htmldoc_parse_duration_seconds",
				Help:    "Parse duration in seconds, including decoding and sanitization",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"mode"},
		),
		Lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmldoc_lookups_total",
				Help: "Total number of selector lookups",
			},
			[]string{"kind", "outcome"},
		),
	}
}

// RecordToolCall records a tool execution
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordParse records a parse outcome and how long it took
func (m *Metrics) RecordParse(mode string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.Parses.WithLabelValues(mode, status).Inc()
	m.ParseDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordLookup records a lookup outcome
func (m *Metrics) RecordLookup(kind, outcome string) {
	m.Lookups.WithLabelValues(kind, outcome).Inc()
}

// Timer measures operation duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	tool    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, tool string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		tool:    tool,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.tool, status, time.Since(t.start))
}
