package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/csg8/suanmingapp/internal/domain/repository"
)

const namespace = "suanming"

// Recorder implements repository.Metrics using Prometheus.
type Recorder struct {
	chartsTotal  *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	verdicts     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New registers the collectors with reg; nil means the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		chartsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "charts_generated_total",
				Help:      "Total number of charts generated",
			},
			[]string{"kind"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Chart cache lookups by result",
			},
			[]string{"kind", "result"},
		),
		verdicts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "palace_verdicts_total",
				Help:      "Palace verdicts produced by ziwei charts",
			},
			[]string{"verdict"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operations in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 3},
			},
			[]string{"operation"},
		),
	}
}

// RecordChart counts a generated chart.
func (r *Recorder) RecordChart(kind string) {
	r.chartsTotal.WithLabelValues(kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordCache(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(kind, result).Inc()
}

func (r *Recorder) RecordVerdict(verdict string) {
	r.verdicts.WithLabelValues(verdict).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordChart(string)            {}
func (Nop) RecordError(string)            {}
func (Nop) RecordLatency(string, float64) {}
func (Nop) RecordCache(string, bool)      {}
func (Nop) RecordVerdict(string)          {}

var (
	_ repository.Metrics = (*Recorder)(nil)
	_ repository.Metrics = Nop{}
)
