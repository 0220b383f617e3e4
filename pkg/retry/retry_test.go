package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campsite/booking-service/pkg/retry"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func noSleep(delays *[]time.Duration) retry.Sleep {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRetryer_Do(t *testing.T) {
	t.Parallel()

	retryable := func(err error) bool { return errors.Is(err, errTransient) }

	t.Run("succeeds first attempt", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		r := retry.New(5, 500*time.Millisecond, time.Second, retry.WithSleep(noSleep(&delays)))

		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		}, retryable)
		require.NoError(t, err)
		require.Equal(t, 1, calls)
		require.Empty(t, delays)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		r := retry.New(5, 500*time.Millisecond, time.Second, retry.WithSleep(noSleep(&delays)))

		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		}, retryable)
		require.NoError(t, err)
		require.Equal(t, 3, calls)
		require.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, delays)
	})

	t.Run("backoff doubles and caps at max", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		r := retry.New(5, 500*time.Millisecond, time.Second, retry.WithSleep(noSleep(&delays)))

		err := r.Do(context.Background(), func(context.Context) error {
			return errTransient
		}, retryable)
		require.ErrorIs(t, err, errTransient)
		require.Equal(t, []time.Duration{
			500 * time.Millisecond, time.Second, time.Second, time.Second,
		}, delays)
	})

	t.Run("non retryable error propagates immediately", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		r := retry.New(5, 500*time.Millisecond, time.Second, retry.WithSleep(noSleep(&delays)))

		fatal := errors.New("fatal")
		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			return fatal
		}, retryable)
		require.ErrorIs(t, err, fatal)
		require.Equal(t, 1, calls)
		require.Empty(t, delays)
	})

	t.Run("exhausting attempts returns last error", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		r := retry.New(2, 500*time.Millisecond, time.Second, retry.WithSleep(noSleep(&delays)))

		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			return errTransient
		}, retryable)
		require.ErrorIs(t, err, errTransient)
		require.Equal(t, 2, calls)
		require.Len(t, delays, 1)
	})

	t.Run("cancelled context stops between attempts", func(t *testing.T) {
		t.Parallel()
		r := retry.New(5, time.Millisecond, time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := r.Do(ctx, func(context.Context) error {
			calls++
			return errTransient
		}, retryable)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, calls)
	})
}
