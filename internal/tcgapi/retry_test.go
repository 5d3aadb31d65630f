package tcgapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRetry_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil on first success", func(t *testing.T) {
		calls := 0
		err := NoRetry.Do(ctx, func() (bool, error) {
			calls++
			return false, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts behaves as one attempt", func(t *testing.T) {
		calls := 0
		err := PageRetry{}.Do(ctx, func() (bool, error) {
			calls++
			return true, errors.New("boom")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops immediately on non-retryable error", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("permanent")
		err := PageRetry{Attempts: 5}.Do(ctx, func() (bool, error) {
			calls++
			return false, sentinel
		})

		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		calls := 0
		err := PageRetry{Attempts: 3}.Do(ctx, func() (bool, error) {
			calls++
			return true, errors.New("transient")
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("succeeds mid-budget", func(t *testing.T) {
		calls := 0
		err := PageRetry{Attempts: 4}.Do(ctx, func() (bool, error) {
			calls++
			if calls < 2 {
				return true, errors.New("transient")
			}
			return false, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honors context cancellation during delay", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		err := PageRetry{Attempts: 3, Delay: time.Minute}.Do(cancelCtx, func() (bool, error) {
			calls++
			return true, errors.New("transient")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls, "Should not attempt again after cancellation")
	})
}
