package metrics

import (
	"sync"

	"WyckoffLab/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	fetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "fetches_total",
			Help:      "Candle fetches by symbol and result",
		},
		[]string{"symbol", "result"},
	)

	fetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "fetch_latency_seconds",
			Help:      "Candle fetch latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"symbol"},
	)

	staleDiscards = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "stale_discards_total",
			Help:      "Fetch results discarded because parameters changed mid-flight",
		},
	)

	classifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "classifications_total",
			Help:      "Phase classifications by label",
		},
		[]string{"label"},
	)

	markersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "markers_placed_total",
			Help:      "Markers placed by concept",
		},
		[]string{"concept"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wyckofflab",
			Subsystem: "chart",
			Name:      "active_sessions",
			Help:      "Currently connected chart sessions",
		},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wyckofflab",
			Name:      "errors_total",
			Help:      "Errors by kind",
		},
		[]string{"kind"},
	)
)

// Recorder implements repository.Metrics with Prometheus collectors.
type Recorder struct{}

// New registers collectors once and returns a Recorder.
func New() repository.Metrics {
	once.Do(func() {
		prometheus.MustRegister(
			fetchesTotal, fetchLatency, staleDiscards,
			classifications, markersPlaced, activeSessions, errorsTotal,
		)
	})
	return &Recorder{}
}

func (r *Recorder) RecordFetch(symbol, result string, seconds float64) {
	fetchesTotal.WithLabelValues(symbol, result).Inc()
	fetchLatency.WithLabelValues(symbol).Observe(seconds)
}

func (r *Recorder) RecordStaleDiscard() {
	staleDiscards.Inc()
}

func (r *Recorder) RecordClassification(label string) {
	classifications.WithLabelValues(label).Inc()
}

func (r *Recorder) RecordMarkerPlaced(concept string) {
	markersPlaced.WithLabelValues(concept).Inc()
}

func (r *Recorder) SessionOpened() {
	activeSessions.Inc()
}

func (r *Recorder) SessionClosed() {
	activeSessions.Dec()
}

func (r *Recorder) RecordError(kind string) {
	errorsTotal.WithLabelValues(kind).Inc()
}
