package clock

import (
	"context"
	"time"
)

// Sleeper waits on the wall clock.
type Sleeper struct{}

func New() *Sleeper { return &Sleeper{} }

// Sleep blocks for d or until ctx ends, whichever comes first.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Instant skips every delay but still honors cancellation.
type Instant struct{}

func (Instant) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }
