package resilience

import (
	"context"
	"sync"
	"time"

	"orders/internal/pkg/errs"
)

// Breaker short-circuits an operation after it fails too often. Once the
// failure threshold is reached the breaker opens and every call fails fast
// with errs.ErrCircuitOpen for the configured duration. After that duration
// calls flow again; the first success closes the breaker fully, while a
// further failure re-opens it immediately.
type Breaker struct {
	threshold int
	openFor   time.Duration
	now       func() time.Time

	mu        sync.Mutex
	failures  int
	openUntil time.Time
}

// NewBreaker creates a breaker that opens for openFor after threshold
// consecutive failures.
func NewBreaker(threshold int, openFor time.Duration) *Breaker {
	return &Breaker{
		threshold: threshold,
		openFor:   openFor,
		now:       time.Now,
	}
}

// Do executes the operation under the breaker's policy. It returns
// errs.ErrCircuitOpen without invoking the operation while the breaker is
// open, and the operation's own error otherwise.
func (b *Breaker) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := operation(ctx)
	b.record(err)

	return err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.now().Before(b.openUntil) {
		return errs.ErrCircuitOpen
	}

	return nil
}

func (b *Breaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.failures = 0
		b.openUntil = time.Time{}
		return
	}

	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = b.now().Add(b.openFor)
	}
}
