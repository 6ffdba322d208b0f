package application

import (
	"context"
	"fmt"
	"time"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// emitPhases publishes each phase and then waits for its delay. The context
// is checked before every phase and interrupts the wait.
func emitPhases(
	ctx context.Context,
	bus domain.ProgressBus,
	sleeper domain.Sleeper,
	phases []domain.Phase,
	delay func() time.Duration,
) error {
	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: before %d%%: %w", domain.ErrCancelled, p.Percentage, err)
		}
		bus.Publish(domain.ProgressEvent{Percentage: p.Percentage, Status: p.Status})
		if err := sleeper.Sleep(ctx, delay()); err != nil {
			return fmt.Errorf("%w: after %d%%: %w", domain.ErrCancelled, p.Percentage, err)
		}
	}
	return nil
}
