package source

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HeightSource reports the current chain tip height.
	HeightSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
	}
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	// BlockCounter is the subset of the btcd rpc client used by NodeSource.
	BlockCounter interface {
		GetBlockCount() (int64, error)
	}
	Metrics interface {
		Observe(err error, started time.Time)
	}
)
