package service

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// Snapshot is an immutable view of the countdown. A new value is published
// on every change; fields are never updated in place.
type Snapshot struct {
	CurrentBlock     uint64         `json:"currentBlock"`
	Estimated        bool           `json:"estimated"`
	BlocksRemaining  uint64         `json:"blocksRemaining"`
	TargetDate       time.Time      `json:"targetDate"`
	Days             int64          `json:"days"`
	Hours            int64          `json:"hours"`
	Minutes          int64          `json:"minutes"`
	Seconds          int64          `json:"seconds"`
	Expired          bool           `json:"expired"`
	ProgressPercent  float64        `json:"progressPercent"`
	CurrentReward    float64        `json:"currentReward"`
	NextReward       float64        `json:"nextReward"`
	CurrentSubsidy   btcutil.Amount `json:"currentSubsidySats"`
	NextSubsidy      btcutil.Amount `json:"nextSubsidySats"`
	HalvingNumber    uint64         `json:"halvingNumber"`
	NextHalvingBlock uint64         `json:"nextHalvingBlock"`
	Loading          bool           `json:"loading"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
