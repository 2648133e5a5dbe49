// Package resilience provides the retry and circuit breaker policies guarding
// outbound calls. Policies compose: a Retry wraps the call, a Breaker wraps
// the Retry, so one logical delivery counts as a single breaker outcome no
// matter how many retries it took.
package resilience

import "time"

// Backoff computes exponentially growing delays between retry attempts.
type Backoff struct {
	// Base is the unit delay. Retry n waits Base * 2^n, so with a one
	// second base the first retry waits 2s, then 4s, then 8s.
	Base time.Duration
}

// Delay returns the wait before the given one-based retry.
func (b Backoff) Delay(retry int) time.Duration {
	if retry < 0 {
		retry = 0
	}

	return b.Base << uint(retry)
}
