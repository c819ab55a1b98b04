// Package poll provides a cancellable fixed-interval poll loop for
// asynchronous external jobs.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrBudgetExhausted is returned when the attempt budget runs out before
// the job reaches a terminal state.
var ErrBudgetExhausted = errors.New("poll attempt budget exhausted")

// Func checks an asynchronous job once. It returns done=true when the job
// reached a successful terminal state, or an error for a failed one.
type Func func(ctx context.Context) (done bool, err error)

// Until invokes fn at a fixed interval until it reports done, returns an
// error, the context is cancelled, or maxAttempts is exhausted. The
// interval elapses before every attempt, so fn is called at most
// maxAttempts times over interval*maxAttempts. Cancellation is observed
// before each sleep completes, never after the full budget.
func Until(ctx context.Context, interval time.Duration, maxAttempts int, fn Func) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return ErrBudgetExhausted
}
