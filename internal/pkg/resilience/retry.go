package resilience

import (
	"context"
	"time"
)

// Retry re-executes a failing operation a bounded number of times, waiting
// an exponentially growing delay between attempts. The zero value performs
// the operation once with no retries.
type Retry struct {
	// MaxRetries is the number of additional attempts after the first failure.
	MaxRetries int
	Backoff    Backoff
	// OnRetry, when set, is invoked before each wait with the one-based
	// retry number and the error that triggered the retry.
	OnRetry func(retry int, err error)
}

// Do runs the operation until it succeeds, the retry budget is exhausted, or
// the context is done. It returns the operation's last error, or the context
// error when cancelled mid-wait.
func (r Retry) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	var lastErr error

	for retry := 1; ; retry++ {
		lastErr = operation(ctx)
		if lastErr == nil {
			return nil
		}

		if retry > r.MaxRetries {
			return lastErr
		}

		if r.OnRetry != nil {
			r.OnRetry(retry, lastErr)
		}

		if err := sleep(ctx, r.Backoff.Delay(retry)); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
