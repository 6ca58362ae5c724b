package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/halving-countdown/internal/halving"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
	}
	TrackerMetrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveEpoch(epoch halving.Epoch)
		ObserveExpired()
	}
)
