package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goodnatureofminers/halving-countdown/internal/format"
	"github.com/goodnatureofminers/halving-countdown/internal/halving/service"
)

// Terminal writes snapshots to a terminal, one frame per call.
type Terminal struct {
	out       io.Writer
	formatter *format.Formatter
	clear     bool

	title *color.Color
	clock *color.Color
	label *color.Color
	value *color.Color
	muted *color.Color
}

// NewTerminal returns a Terminal writing to out. When clear is set every
// frame starts by clearing the screen.
func NewTerminal(out io.Writer, formatter *format.Formatter, clear bool) *Terminal {
	return &Terminal{
		out:       out,
		formatter: formatter,
		clear:     clear,
		title:     color.New(color.FgHiYellow, color.Bold),
		clock:     color.New(color.FgHiGreen, color.Bold),
		label:     color.New(color.FgHiBlack),
		value:     color.New(color.FgHiWhite),
		muted:     color.New(color.FgYellow),
	}
}

// Render writes a single frame for s.
func (t *Terminal) Render(s service.Snapshot) error {
	d := NewDisplay(s, t.formatter)

	if t.clear {
		if _, err := io.WriteString(t.out, "\033[H\033[2J"); err != nil {
			return err
		}
	}
	if _, err := t.title.Fprintf(t.out, "Countdown to the %s Bitcoin halving\n", d.Halving); err != nil {
		return err
	}
	if _, err := t.clock.Fprintf(t.out, "%sd %sh %sm %ss\n\n", d.Days, d.Hours, d.Minutes, d.Seconds); err != nil {
		return err
	}

	rows := [][2]string{
		{"Current block", d.CurrentBlock},
		{"Halving block", d.NextHalvingBlock},
		{"Blocks remaining", d.BlocksRemaining},
		{"Epoch progress", d.Progress},
		{"Block reward", d.CurrentReward + " -> " + d.NextReward},
		{"Estimated date", d.TargetDate},
	}
	for _, row := range rows {
		if _, err := t.label.Fprintf(t.out, "%-18s", row[0]); err != nil {
			return err
		}
		if _, err := t.value.Fprintln(t.out, row[1]); err != nil {
			return err
		}
	}

	switch {
	case d.Loading:
		_, err := t.muted.Fprintln(t.out, "\nfetching current block height...")
		return err
	case d.Estimated:
		_, err := t.muted.Fprintln(t.out, "\nblock height estimated from the 10 minute average")
		return err
	}
	_, err := fmt.Fprintln(t.out)
	return err
}
