package retry

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done.
type Sleep func(ctx context.Context, d time.Duration) error

type Retryer interface {
	Do(ctx context.Context, op func(ctx context.Context) error, retryable func(error) bool) error
}

type retryer struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	sleep    Sleep
}

type Option func(*retryer)

// WithSleep overrides the wait between attempts.
func WithSleep(s Sleep) Option {
	return func(r *retryer) { r.sleep = s }
}

// New builds a Retryer that runs an operation up to attempts times, doubling
// the delay between attempts starting at initial and capping it at max.
func New(attempts int, initial, max time.Duration, opts ...Option) Retryer {
	r := &retryer{
		attempts: attempts,
		initial:  initial,
		max:      max,
		sleep:    sleepCtx,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do repeats op while retryable(err) holds and attempts remain. Errors not
// classified as retryable propagate immediately; exhausting attempts returns
// the last retryable error.
func (r *retryer) Do(ctx context.Context, op func(ctx context.Context) error, retryable func(error) bool) error {
	delay := r.initial
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(ctx); err == nil || !retryable(err) {
			return err
		}
		if attempt >= r.attempts {
			return err
		}
		if serr := r.sleep(ctx, delay); serr != nil {
			return serr
		}
		delay *= 2
		if delay > r.max {
			delay = r.max
		}
	}
}
