// Package render turns tracker snapshots into human readable output.
package render

import (
	"strconv"

	"github.com/goodnatureofminers/halving-countdown/internal/format"
	"github.com/goodnatureofminers/halving-countdown/internal/halving/service"
)

// Display holds the display strings of a snapshot.
type Display struct {
	Halving          string `json:"halving"`
	Days             string `json:"days"`
	Hours            string `json:"hours"`
	Minutes          string `json:"minutes"`
	Seconds          string `json:"seconds"`
	CurrentBlock     string `json:"currentBlock"`
	BlocksRemaining  string `json:"blocksRemaining"`
	NextHalvingBlock string `json:"nextHalvingBlock"`
	Progress         string `json:"progress"`
	CurrentReward    string `json:"currentReward"`
	NextReward       string `json:"nextReward"`
	TargetDate       string `json:"targetDate"`
	Loading          bool   `json:"loading"`
	Estimated        bool   `json:"estimated"`
}

// NewDisplay formats s with f.
func NewDisplay(s service.Snapshot, f *format.Formatter) Display {
	return Display{
		Halving:          strconv.FormatUint(s.HalvingNumber, 10) + format.Ordinal(s.HalvingNumber),
		Days:             strconv.FormatInt(s.Days, 10),
		Hours:            format.PadZero(s.Hours),
		Minutes:          format.PadZero(s.Minutes),
		Seconds:          format.PadZero(s.Seconds),
		CurrentBlock:     f.Number(s.CurrentBlock),
		BlocksRemaining:  f.Number(s.BlocksRemaining),
		NextHalvingBlock: f.Number(s.NextHalvingBlock),
		Progress:         f.Percent(s.ProgressPercent),
		CurrentReward:    format.Reward(s.CurrentReward) + " BTC",
		NextReward:       format.Reward(s.NextReward) + " BTC",
		TargetDate:       format.Date(s.TargetDate.Local()),
		Loading:          s.Loading,
		Estimated:        s.Estimated,
	}
}
