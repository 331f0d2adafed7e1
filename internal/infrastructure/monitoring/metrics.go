package monitoring

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one pipeline run.
type Metrics struct {
	registry *prometheus.Registry

	// Stage metrics
	StagesTotal   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec

	// Run metrics
	RunsTotal  prometheus.Counter
	RunSeconds prometheus.Histogram

	// Snapshot for the text footer - tracks current values
	mu       sync.Mutex
	snapshot Snapshot
}

// Snapshot holds current metric values for the text footer.
type Snapshot struct {
	StagesExecuted int64
	StageSeconds   float64
	RunsCompleted  int64
}

// NewMetrics creates a metrics collector backed by a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		StagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipetrace_stages_total",
				Help: "Total number of stage executions",
			},
			[]string{"stage"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pipetrace_stage_duration_seconds",
				Help:    "Stage execution duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"stage"},
		),
		RunsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pipetrace_runs_total",
				Help: "Total number of completed pipeline runs",
			},
		),
		RunSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pipetrace_run_duration_seconds",
				Help:    "Whole-run duration in seconds",
				Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
	}

	reg.MustRegister(m.StagesTotal, m.StageDuration, m.RunsTotal, m.RunSeconds)
	return m
}

// RecordStage records one stage execution.
func (m *Metrics) RecordStage(stage string, duration time.Duration) {
	m.StagesTotal.WithLabelValues(stage).Inc()
	m.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.StagesExecuted++
	m.snapshot.StageSeconds += duration.Seconds()
	m.mu.Unlock()
}

// RecordRun records a completed pipeline run.
func (m *Metrics) RecordRun(total time.Duration) {
	m.RunsTotal.Inc()
	m.RunSeconds.Observe(total.Seconds())

	m.mu.Lock()
	m.snapshot.RunsCompleted++
	m.mu.Unlock()
}

// GetSnapshot returns current metric values.
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// Registry exposes the run's private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFooter writes the metrics footer appended to demo reports when
// metrics collection is enabled.
func (m *Metrics) WriteFooter(w io.Writer) {
	snap := m.GetSnapshot()
	fmt.Fprintf(w, "Metrics:\n")
	fmt.Fprintf(w, "  stages executed : %d\n", snap.StagesExecuted)
	fmt.Fprintf(w, "  busy time (sum) : %.6f s\n", snap.StageSeconds)
	fmt.Fprintf(w, "  runs completed  : %d\n", snap.RunsCompleted)
}
