// Package metrics exposes Prometheus instrumentation for word lookups and selections.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"antipodes-api/internal/models"
	"antipodes-api/internal/selection"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "antipodes"

// WordLookup is the capability being instrumented.
type WordLookup interface {
	LookupWords(ctx context.Context, c models.Coordinate) (models.ResolvedLocation, error)
}

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	lookups    *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	selections *prometheus.CounterVec
	handler    http.Handler
}

// New registers all collectors, including Go runtime and process metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Word lookups by provider and outcome.",
		}, []string{"provider", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Latency of word lookups.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Published selection states by kind.",
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.lookups,
		m.latency,
		m.selections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// InstrumentLookup wraps next so that every call is counted and timed.
func (m *Metrics) InstrumentLookup(provider string, next WordLookup) WordLookup {
	return &instrumentedLookup{metrics: m, provider: provider, next: next}
}

// ObserveSelection is a selection.Observer counting published states.
func (m *Metrics) ObserveSelection(s selection.Snapshot) {
	m.selections.WithLabelValues(string(s.State.Kind)).Inc()
}

type instrumentedLookup struct {
	metrics  *Metrics
	provider string
	next     WordLookup
}

func (l *instrumentedLookup) LookupWords(ctx context.Context, c models.Coordinate) (models.ResolvedLocation, error) {
	start := time.Now()
	loc, err := l.next.LookupWords(ctx, c)
	l.metrics.latency.WithLabelValues(l.provider).Observe(time.Since(start).Seconds())
	l.metrics.lookups.WithLabelValues(l.provider, outcome(err)).Inc()
	return loc, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrMissingWords):
		return "missing_words"
	case errors.Is(err, models.ErrMissingCoordinates):
		return "missing_coordinates"
	default:
		return "lookup_failed"
	}
}
