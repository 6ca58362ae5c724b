package halving

import (
	"time"

	"github.com/goodnatureofminers/halving-countdown/pkg/safe"
)

// Estimate returns the mainnet height expected at now.
func Estimate(now time.Time) uint64 {
	return MainNet.Estimate(now)
}

// Estimate returns the height expected at now assuming blocks arrive exactly
// every BlockInterval since genesis. Instants before genesis map to 0.
func (p Params) Estimate(now time.Time) uint64 {
	blocks := int64(now.Sub(p.Genesis) / p.BlockInterval)
	height, err := safe.Uint64(blocks)
	if err != nil {
		return 0
	}
	return height
}

// TargetDate projects when blocksRemaining blocks will have been mined.
func (p Params) TargetDate(now time.Time, blocksRemaining uint64) time.Time {
	return now.Add(time.Duration(blocksRemaining) * p.BlockInterval)
}
