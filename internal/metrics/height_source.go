// Package metrics exposes prometheus collectors for the halving countdown.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "halving_countdown"

var (
	heightSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "height_source",
		Name:      "requests_total",
		Help:      "Count of block height requests to the height source.",
	}, []string{"source", "status"})
	heightSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "height_source",
		Name:      "request_duration_seconds",
		Help:      "Duration of block height requests to the height source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
)

// HeightSource tracks metrics for calls to a block height oracle.
type HeightSource struct {
	source string
}

// NewHeightSource constructs a HeightSource collector labelled with source.
func NewHeightSource(source string) *HeightSource {
	if source == "" {
		source = "unknown"
	}
	return &HeightSource{source: source}
}

// Observe records a single height request outcome and duration.
func (m HeightSource) Observe(err error, started time.Time) {
	status := statusOf(err)
	heightSourceRequestsTotal.WithLabelValues(m.source, status).Inc()
	heightSourceRequestDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
