package halving

import (
	"fmt"
	"time"
)

// State is the state of a Countdown.
type State int

const (
	// Ticking means the target date is still ahead.
	Ticking State = iota
	// Expired means the target date passed and a resync is pending.
	Expired
)

func (s State) String() string {
	switch s {
	case Ticking:
		return "ticking"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const day = 24 * time.Hour

// Remaining is the time left until the target date split into display units.
type Remaining struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	// Expired asks the owner to obtain a fresh height and Reset the countdown.
	Expired bool
}

// Countdown tracks a target date and reports the remaining time on every
// Tick. It does no scheduling of its own and is not safe for concurrent use.
type Countdown struct {
	target time.Time
	state  State
}

// NewCountdown returns a ticking countdown towards target.
func NewCountdown(target time.Time) *Countdown {
	return &Countdown{target: target}
}

// Target returns the current target date.
func (c *Countdown) Target() time.Time { return c.target }

// State returns the current state.
func (c *Countdown) State() State { return c.state }

// Reset installs a new target and resumes ticking.
func (c *Countdown) Reset(target time.Time) {
	c.target = target
	c.state = Ticking
}

// Tick computes the remaining time at now. Once the target is reached the
// countdown moves to Expired and reports zero with the resync flag set.
func (c *Countdown) Tick(now time.Time) Remaining {
	diff := c.target.Sub(now)
	if diff <= 0 {
		c.state = Expired
		return Remaining{Expired: true}
	}
	return Split(diff)
}

// Split floors a positive duration into days, hours, minutes and seconds.
func Split(d time.Duration) Remaining {
	return Remaining{
		Days:    int64(d / day),
		Hours:   int64(d % day / time.Hour),
		Minutes: int64(d % time.Hour / time.Minute),
		Seconds: int64(d % time.Minute / time.Second),
	}
}
