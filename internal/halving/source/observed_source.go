package source

import (
	"context"
	"time"
)

// ObservedSource decorates a HeightSource with metrics.
type ObservedSource struct {
	source  HeightSource
	metrics Metrics
}

// NewObservedSource wraps source so every call is recorded in metrics.
func NewObservedSource(source HeightSource, metrics Metrics) *ObservedSource {
	return &ObservedSource{source: source, metrics: metrics}
}

// LatestHeight delegates to the wrapped source.
func (s *ObservedSource) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(err, started)
	}()
	return s.source.LatestHeight(ctx)
}
