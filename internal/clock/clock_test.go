package clock

import (
	"context"
	"testing"
	"time"
)

func TestRunTicksImmediatelyAndOnInterval(t *testing.T) {
	c := New(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan time.Time, 16)
	done := make(chan struct{})
	go func() {
		c.Run(ctx, func(now time.Time) { ticks <- now })
		close(done)
	}()

	// The first tick fires without waiting for the interval.
	select {
	case <-ticks:
	case <-time.After(5 * time.Millisecond):
		t.Fatalf("no immediate tick")
	}

	// At least one periodic tick follows.
	select {
	case <-ticks:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("no periodic tick")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop on cancellation")
	}
}
