// Package metrics records per-run counters for a ranking run and exports
// them in the Prometheus text format for a node-exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "simili_rank"

// durationBuckets spans quick no-op runs up to long reorders.
var durationBuckets = []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300}

// Move outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ErrNoRegistry is returned when exporting from a zero Recorder.
var ErrNoRegistry = errors.New("metrics registry not initialized")

// Recorder holds the collectors of a single run.
type Recorder struct {
	registry *prometheus.Registry

	issuesFetched prometheus.Gauge
	movesTotal    *prometheus.CounterVec
	runsTotal     *prometheus.CounterVec
	runDuration   prometheus.Histogram
	lastRun       prometheus.Gauge
}

// Option configures a Recorder.
type Option func(*options)

type options struct {
	labels prometheus.Labels
}

// WithConstLabels attaches labels (e.g. tracker, parent) to every metric.
func WithConstLabels(labels map[string]string) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// New creates a Recorder with its own registry.
func New(opts ...Option) *Recorder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		issuesFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "issues_fetched",
			Help:        "Number of child issues fetched for ranking.",
			ConstLabels: o.labels,
		}),
		movesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "moves_total",
			Help:        "Rank moves attempted, by outcome.",
			ConstLabels: o.labels,
		}, []string{"outcome"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "runs_total",
			Help:        "Ranking runs, by result.",
			ConstLabels: o.labels,
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "run_duration_seconds",
			Help:        "Wall time of a ranking run.",
			ConstLabels: o.labels,
			Buckets:     durationBuckets,
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_run_timestamp_seconds",
			Help:        "Unix time the last ranking run finished.",
			ConstLabels: o.labels,
		}),
	}

	r.registry.MustRegister(r.issuesFetched, r.movesTotal, r.runsTotal, r.runDuration, r.lastRun)
	return r
}

// IssuesFetched records how many issues a run is ranking.
func (r *Recorder) IssuesFetched(n int) {
	r.issuesFetched.Set(float64(n))
}

// Move records the outcome of one rank move.
func (r *Recorder) Move(err error) {
	if err != nil {
		r.movesTotal.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	r.movesTotal.WithLabelValues(OutcomeSuccess).Inc()
}

// RunFinished records the result and duration of a run. Result is one of
// "applied", "unchanged", "dry_run", "empty" or "error".
func (r *Recorder) RunFinished(result string, elapsed time.Duration) {
	r.runsTotal.WithLabelValues(result).Inc()
	r.runDuration.Observe(elapsed.Seconds())
	r.lastRun.SetToCurrentTime()
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || r.registry == nil {
		return ErrNoRegistry
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
