// Package clock drives the widget's one-second heartbeat.
package clock

import (
	"context"
	"time"
)

// Clock invokes a callback with the current wall-clock time on a fixed
// interval. Each tick reads time.Now rather than incrementing a
// counter, so the reported time self-corrects against system clock
// changes.
type Clock struct {
	interval time.Duration
}

func New(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Run blocks and calls onTick immediately, then once per interval.
// It exits when ctx is cancelled.
func (c *Clock) Run(ctx context.Context, onTick func(time.Time)) {
	onTick(time.Now())

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(time.Now())
		}
	}
}
