package metrics

import (
	"time"

	"github.com/goodnatureofminers/halving-countdown/internal/halving"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "refresh_total",
		Help:      "Count of block height refresh attempts.",
	}, []string{"status"})

	trackerRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of block height refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	trackerExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "countdown_expired_total",
		Help:      "Count of ticks that found the halving target date in the past.",
	})

	trackerHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "block_height",
		Help:      "Block height the countdown is based on.",
	})

	trackerBlocksRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "blocks_remaining",
		Help:      "Blocks left until the next halving.",
	})

	trackerProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "epoch_progress_percent",
		Help:      "Progress through the current halving epoch.",
	})
)

// Tracker records metrics for the halving tracker service.
type Tracker struct{}

// NewTracker constructs a Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ObserveRefresh records a refresh outcome and duration.
func (Tracker) ObserveRefresh(err error, started time.Time) {
	status := statusOf(err)
	trackerRefreshTotal.WithLabelValues(status).Inc()
	trackerRefreshDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveEpoch publishes the epoch the countdown currently targets.
func (Tracker) ObserveEpoch(e halving.Epoch) {
	trackerHeight.Set(float64(e.Height))
	trackerBlocksRemaining.Set(float64(e.BlocksRemaining))
	trackerProgress.Set(e.ProgressPercent)
}

// ObserveExpired counts a tick that hit an expired countdown.
func (Tracker) ObserveExpired() {
	trackerExpiredTotal.Inc()
}
