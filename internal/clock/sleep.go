// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every calls fn immediately and then after each interval until ctx is done.
// Slow calls push later ones back instead of piling up.
func Every(ctx context.Context, interval time.Duration, fn func(now time.Time)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(time.Now())
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
