package halving

import (
	"math"

	"github.com/btcsuite/btcd/btcutil"
)

// maxHalvings is the shift after which the integer subsidy is zero.
const maxHalvings = 64

// Epoch captures everything derived from a single block height.
type Epoch struct {
	Height           uint64
	EpochIndex       uint64
	HalvingNumber    uint64
	NextHalvingBlock uint64
	BlocksRemaining  uint64
	ProgressPercent  float64
	CurrentReward    float64
	NextReward       float64
	CurrentSubsidy   btcutil.Amount
	NextSubsidy      btcutil.Amount
}

// Compute derives the halving epoch of height under mainnet parameters.
func Compute(height uint64) Epoch {
	return MainNet.Compute(height)
}

// Compute derives the halving epoch of height.
func (p Params) Compute(height uint64) Epoch {
	index := height / p.EpochLength
	next := (index + 1) * p.EpochLength

	return Epoch{
		Height:           height,
		EpochIndex:       index,
		HalvingNumber:    index + 1,
		NextHalvingBlock: next,
		BlocksRemaining:  next - height,
		ProgressPercent:  float64(height%p.EpochLength) / float64(p.EpochLength) * 100,
		CurrentReward:    p.InitialReward / math.Pow(2, float64(index)),
		NextReward:       p.InitialReward / math.Pow(2, float64(index+1)),
		CurrentSubsidy:   p.subsidy(index),
		NextSubsidy:      p.subsidy(index + 1),
	}
}

// subsidy is the integer satoshi reward of an epoch, as paid by consensus.
func (p Params) subsidy(index uint64) btcutil.Amount {
	if index >= maxHalvings {
		return 0
	}
	base := btcutil.Amount(p.InitialReward * btcutil.SatoshiPerBitcoin)
	return base >> index
}
