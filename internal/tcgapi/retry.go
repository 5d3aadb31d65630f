package tcgapi

import (
	"context"
	"log/slog"
	"time"
)

// PageRetry is a bounded retry policy applied to individual page requests.
// It is deliberately separate from the reconciliation engine's control
// flow: the engine never retries on its own, and the default policy
// preserves the original single-attempt behavior.
type PageRetry struct {
	Attempts int           // total attempts; values < 1 behave as 1
	Delay    time.Duration // pause between attempts
}

// NoRetry is the default policy: a single attempt, transient failures abort.
var NoRetry = PageRetry{Attempts: 1}

// Do runs fn until it succeeds, the attempt budget is exhausted, or fn
// reports a non-retryable failure. fn returns whether its error is
// retryable alongside the error itself.
func (p PageRetry) Do(ctx context.Context, fn func() (retryable bool, err error)) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		retryable, err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable || attempt == attempts {
			return lastErr
		}

		slog.Default().Warn(LogMsgPageRetrying,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err)

		if p.Delay > 0 {
			select {
			case <-time.After(p.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}
