// Package halving derives block reward halving epochs, height estimates and
// countdown state from a block height.
package halving

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

// Params describes the emission schedule of a chain.
type Params struct {
	// EpochLength is the number of blocks between two halvings.
	EpochLength uint64
	// BlockInterval is the long-run average time between blocks.
	BlockInterval time.Duration
	// Genesis is the timestamp of block 0.
	Genesis time.Time
	// InitialReward is the block reward of epoch 0 in BTC.
	InitialReward float64
}

const initialRewardBTC = 50

// MainNet holds the bitcoin mainnet schedule.
var MainNet = FromChainParams(&chaincfg.MainNetParams)

// FromChainParams builds Params from btcd chain parameters.
func FromChainParams(p *chaincfg.Params) Params {
	return Params{
		EpochLength:   uint64(p.SubsidyReductionInterval),
		BlockInterval: p.TargetTimePerBlock,
		Genesis:       p.GenesisBlock.Header.Timestamp.UTC(),
		InitialReward: initialRewardBTC,
	}
}
