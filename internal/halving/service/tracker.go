// Package service keeps the halving countdown in sync with the chain tip.
package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/halving-countdown/internal/halving"
	"go.uber.org/zap"
)

type refreshResult struct {
	height  uint64
	err     error
	started time.Time
}

// Tracker reconciles a periodically refreshed tip height with a countdown
// ticking on the local clock. All state is owned by the Run goroutine;
// readers only see published snapshots.
type Tracker struct {
	logger          *zap.Logger
	params          halving.Params
	source          HeightSource
	metrics         TrackerMetrics
	now             func() time.Time
	tickInterval    time.Duration
	refreshInterval time.Duration
	results         chan refreshResult

	epoch     halving.Epoch
	estimated bool
	countdown *halving.Countdown
	remaining halving.Remaining
	loading   bool
	inFlight  bool

	snapshot atomic.Pointer[Snapshot]
}

// NewTracker seeds a Tracker from the clock based height estimate. Zero
// intervals fall back to one second ticks and two minute refreshes.
func NewTracker(
	source HeightSource,
	metrics TrackerMetrics,
	logger *zap.Logger,
	tickInterval time.Duration,
	refreshInterval time.Duration,
) (*Tracker, error) {
	return newTracker(source, metrics, logger, tickInterval, refreshInterval, time.Now)
}

func newTracker(
	source HeightSource,
	metrics TrackerMetrics,
	logger *zap.Logger,
	tickInterval time.Duration,
	refreshInterval time.Duration,
	now func() time.Time,
) (*Tracker, error) {
	if source == nil {
		return nil, errors.New("height source is required")
	}
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}

	t := &Tracker{
		logger:          logger,
		params:          halving.MainNet,
		source:          source,
		metrics:         metrics,
		now:             now,
		tickInterval:    tickInterval,
		refreshInterval: refreshInterval,
		results:         make(chan refreshResult, 1),
		countdown:       halving.NewCountdown(time.Time{}),
		loading:         true,
	}

	started := now()
	t.setHeight(t.params.Estimate(started), true, started)
	t.remaining = t.countdown.Tick(started)
	t.publish(started)
	t.logger.Info("seeded estimated block height",
		zap.Uint64("height", t.epoch.Height),
		zap.Uint64("blocks_remaining", t.epoch.BlocksRemaining),
		zap.Time("target", t.countdown.Target()),
	)
	return t, nil
}

// Snapshot returns the most recently published state.
func (t *Tracker) Snapshot() Snapshot {
	return *t.snapshot.Load()
}

// Run refreshes the height immediately and then keeps ticking and
// refreshing until ctx is canceled.
func (t *Tracker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.tickInterval)
	defer tick.Stop()
	refresh := time.NewTicker(t.refreshInterval)
	defer refresh.Stop()

	t.requestRefresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			t.tick(ctx)
		case <-refresh.C:
			t.requestRefresh(ctx)
		case res := <-t.results:
			t.apply(res)
		}
	}
}

func (t *Tracker) tick(ctx context.Context) {
	now := t.now()
	t.remaining = t.countdown.Tick(now)
	if t.remaining.Expired {
		t.metrics.ObserveExpired()
		t.requestRefresh(ctx)
	}
	t.publish(now)
}

// requestRefresh starts a height fetch unless one is already running.
func (t *Tracker) requestRefresh(ctx context.Context) {
	if t.inFlight {
		t.logger.Debug("height refresh already in flight")
		return
	}
	t.inFlight = true

	go func() {
		started := t.now()
		height, err := t.source.LatestHeight(ctx)
		select {
		case t.results <- refreshResult{height: height, err: err, started: started}:
		case <-ctx.Done():
		}
	}()
}

func (t *Tracker) apply(res refreshResult) {
	t.inFlight = false
	t.metrics.ObserveRefresh(res.err, res.started)

	now := t.now()
	switch {
	case res.err == nil:
		t.setHeight(res.height, false, now)
	case t.countdown.State() == halving.Expired:
		t.logger.Info("height refresh failed after target date, re-estimating", zap.Error(res.err))
		t.setHeight(t.params.Estimate(now), true, now)
	default:
		t.logger.Info("using last known block height",
			zap.Error(res.err),
			zap.Uint64("height", t.epoch.Height),
			zap.Bool("estimated", t.estimated),
		)
	}

	t.loading = false
	t.remaining = t.countdown.Tick(now)
	t.publish(now)
}

func (t *Tracker) setHeight(height uint64, estimated bool, now time.Time) {
	t.epoch = t.params.Compute(height)
	t.estimated = estimated
	t.countdown.Reset(t.params.TargetDate(now, t.epoch.BlocksRemaining))
	t.metrics.ObserveEpoch(t.epoch)
	t.logger.Debug("block height updated",
		zap.Uint64("height", height),
		zap.Bool("estimated", estimated),
		zap.Uint64("halving_number", t.epoch.HalvingNumber),
	)
}

func (t *Tracker) publish(now time.Time) {
	t.snapshot.Store(&Snapshot{
		CurrentBlock:     t.epoch.Height,
		Estimated:        t.estimated,
		BlocksRemaining:  t.epoch.BlocksRemaining,
		TargetDate:       t.countdown.Target(),
		Days:             t.remaining.Days,
		Hours:            t.remaining.Hours,
		Minutes:          t.remaining.Minutes,
		Seconds:          t.remaining.Seconds,
		Expired:          t.remaining.Expired,
		ProgressPercent:  t.epoch.ProgressPercent,
		CurrentReward:    t.epoch.CurrentReward,
		NextReward:       t.epoch.NextReward,
		CurrentSubsidy:   t.epoch.CurrentSubsidy,
		NextSubsidy:      t.epoch.NextSubsidy,
		HalvingNumber:    t.epoch.HalvingNumber,
		NextHalvingBlock: t.epoch.NextHalvingBlock,
		Loading:          t.loading,
		UpdatedAt:        now,
	})
}
