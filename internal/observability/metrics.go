// Package observability owns the Prometheus collectors exported on /metrics.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics uses its own registry so tests can build as many as they like.
type Metrics struct {
	registry         *prometheus.Registry
	resultsRecorded  *prometheus.CounterVec
	personalityTypes *prometheus.CounterVec
	reportDuration   prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		resultsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cognition",
				Name:      "results_recorded_total",
				Help:      "Game results accepted, by game id.",
			},
			[]string{"game_id"},
		),
		personalityTypes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cognition",
				Name:      "personality_types_total",
				Help:      "Questionnaire submissions, by resolved type code.",
			},
			[]string{"type"},
		),
		reportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cognition",
				Name:      "trait_report_seconds",
				Help:      "Time spent building a trait report.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(
		m.resultsRecorded,
		m.personalityTypes,
		m.reportDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// All observers are nil-safe so callers can run without metrics.

func (m *Metrics) ResultRecorded(gameID string) {
	if m == nil {
		return
	}
	m.resultsRecorded.WithLabelValues(gameID).Inc()
}

func (m *Metrics) PersonalityRecorded(code string) {
	if m == nil {
		return
	}
	m.personalityTypes.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveReport(start time.Time) {
	if m == nil {
		return
	}
	m.reportDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
