package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Money is a value object holding a monetary amount as an exact count of
// cents. Amounts in this domain are never negative: line prices are strictly
// positive and the computed tax is non-negative.
//
// Keeping cents in an int64 makes percentage computation exact at
// two-decimal precision, which the tax rules require. The zero value is a
// valid zero amount.
//
// Money is immutable; arithmetic methods return new values.
type Money struct {
	cents int64
}

// NewMoney creates a Money from a cent count. Fails for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount as a cent count.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulInt returns the amount multiplied by a non-negative integer factor,
// e.g. a line quantity.
func (m Money) MulInt(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// Percent returns the given percentage of the amount, rounded half-up to
// the nearest cent.
func (m Money) Percent(pct int64) Money {
	return Money{cents: (m.cents*pct + 50) / 100}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "12.34".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
