package source

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
)

// LimitedSource spaces calls to a HeightSource at least minInterval apart.
type LimitedSource struct {
	source  HeightSource
	limiter ratelimit.Limiter
}

// NewLimitedSource wraps source. A non-positive interval disables the limit.
func NewLimitedSource(source HeightSource, minInterval time.Duration) *LimitedSource {
	limiter := ratelimit.NewUnlimited()
	if minInterval > 0 {
		limiter = ratelimit.New(1, ratelimit.Per(minInterval), ratelimit.WithoutSlack)
	}
	return &LimitedSource{source: source, limiter: limiter}
}

// LatestHeight waits for a slot, giving up when ctx is done, then delegates.
func (s *LimitedSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	return s.source.LatestHeight(ctx)
}

func (s *LimitedSource) wait(ctx context.Context) error {
	taken := make(chan struct{})
	go func() {
		s.limiter.Take()
		close(taken)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-taken:
		return nil
	}
}
