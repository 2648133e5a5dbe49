package ports

import "time"

// Clock supplies the current UTC time. Injected so domain timestamps are
// testable without touching the wall clock.
type Clock interface {
	Now() time.Time
}

// FeatureUseNewTaxRule selects the current tax rule: enabled applies the new
// rate, disabled falls back to the legacy rate.
const FeatureUseNewTaxRule = "useNewTaxRule"

// FeatureToggles reports runtime feature flags. The tax-rule toggle is read
// once per order creation.
type FeatureToggles interface {
	IsEnabled(flagName string) bool
}

// DispatchSettings supplies the dispatch engine's tunables. Implementations
// re-read their source on every call, so values may change between cycles
// without a restart.
type DispatchSettings interface {
	// MaxDeliveryAttempts is the eligibility cutoff for the attempt counter.
	MaxDeliveryAttempts() int
}
