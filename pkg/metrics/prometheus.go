// Package metrics provides Prometheus metrics for the goatboard ranking runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector emitted by a ranking run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	recordsRead     prometheus.Counter
	recordsSkipped  *prometheus.CounterVec
	population      *prometheus.GaugeVec
	topScore        *prometheus.GaugeVec
	baselineMatches *prometheus.CounterVec
	phaseDuration   *prometheus.HistogramVec
	runErrors       *prometheus.CounterVec
	lastRunUnix     prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by package-level helpers

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "goatboard",
		subsystem:        "ranking",
		histogramBuckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 60000},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_read_total",
		Help:        "Box-score records pulled from the statistics source",
		ConstLabels: m.constLabels,
	})

	m.recordsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_skipped_total",
		Help:        "Box-score records ignored during aggregation, by reason",
		ConstLabels: m.constLabels,
	}, []string{"reason"})

	m.population = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "population",
		Help:        "Players ranked in the last run, by board",
		ConstLabels: m.constLabels,
	}, []string{"board"})

	m.topScore = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "top_score",
		Help:        "Score of the rank 1 player in the last run, by board",
		ConstLabels: m.constLabels,
	}, []string{"board"})

	m.baselineMatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "baseline_matches_total",
		Help:        "Baseline feed lookups, by match kind",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.phaseDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "phase_duration_milliseconds",
		Help:        "Wall time spent in each pipeline phase",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"phase"})

	m.runErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_errors_total",
		Help:        "Errors raised by a run, by stage",
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_unix",
		Help:        "Unix timestamp of the last completed run",
		ConstLabels: m.constLabels,
	})
}

// RecordRead counts one record pulled from the source.
func (m *Manager) RecordRead() { m.recordsRead.Inc() }

// RecordSkipped counts one ignored record.
func (m *Manager) RecordSkipped(reason string) { m.recordsSkipped.WithLabelValues(reason).Inc() }

// SetPopulation sets the ranked population size for a board.
func (m *Manager) SetPopulation(board string, n int) {
	m.population.WithLabelValues(board).Set(float64(n))
}

// SetTopScore sets the leader's score for a board.
func (m *Manager) SetTopScore(board string, score float64) {
	m.topScore.WithLabelValues(board).Set(score)
}

// RecordBaselineMatch counts a baseline lookup outcome.
func (m *Manager) RecordBaselineMatch(kind string) {
	m.baselineMatches.WithLabelValues(kind).Inc()
}

// ObservePhase records how long a phase took.
func (m *Manager) ObservePhase(phase string, ms float64) {
	m.phaseDuration.WithLabelValues(phase).Observe(ms)
}

// RecordRunError counts a failed stage.
func (m *Manager) RecordRunError(stage string) { m.runErrors.WithLabelValues(stage).Inc() }

// MarkRun stamps the completion time of a run.
func (m *Manager) MarkRun(unix int64) { m.lastRunUnix.Set(float64(unix)) }

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

// RecordPhaseDuration observes a phase duration in milliseconds.
func RecordPhaseDuration(phase string, ms float64) { globalManager.ObservePhase(phase, ms) }

// RecordRunError increments the run error counter.
func RecordRunError(stage string) { globalManager.RecordRunError(stage) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return ErrNoTextfilePath
	}
	if g == nil {
		g = customRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrObserveFailed, err)
	}
	return nil
}
