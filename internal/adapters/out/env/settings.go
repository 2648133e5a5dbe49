// Package env supplies runtime tunables from environment variables. Values
// are read on every call, so changed variables take effect without a restart
// for anything re-reading its settings per cycle.
package env

import (
	"os"
	"strconv"
)

// defaultMaxDeliveryAttempts applies when DISPATCH_MAX_ATTEMPTS is unset or
// unparsable.
const defaultMaxDeliveryAttempts = 3

// envDispatchMaxAttempts overrides the dispatch eligibility cutoff.
const envDispatchMaxAttempts = "DISPATCH_MAX_ATTEMPTS"

// FeatureToggles reads feature flags from the environment. A flag named
// "someFlag" maps to the variable FEATURE_SOME_FLAG holding "true" or "1".
type FeatureToggles struct{}

// NewFeatureToggles creates environment-backed feature toggles.
func NewFeatureToggles() FeatureToggles {
	return FeatureToggles{}
}

// IsEnabled reports whether the named flag is switched on. Unset and
// malformed values read as disabled.
func (FeatureToggles) IsEnabled(flagName string) bool {
	enabled, err := strconv.ParseBool(os.Getenv(flagVarName(flagName)))
	return err == nil && enabled
}

// flagVarName converts a camelCase flag name to its FEATURE_* variable name.
func flagVarName(flagName string) string {
	name := make([]byte, 0, len(flagName)+8)
	name = append(name, "FEATURE_"...)

	for i := 0; i < len(flagName); i++ {
		c := flagName[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				name = append(name, '_')
			}
			name = append(name, c)
			continue
		}
		if c >= 'a' && c <= 'z' {
			name = append(name, c-'a'+'A')
			continue
		}
		name = append(name, c)
	}

	return string(name)
}

// DispatchSettings reads the dispatch engine's tunables from the environment.
type DispatchSettings struct{}

// NewDispatchSettings creates environment-backed dispatch settings.
func NewDispatchSettings() DispatchSettings {
	return DispatchSettings{}
}

// MaxDeliveryAttempts returns the dispatch eligibility cutoff. Falls back to
// the default when the variable is unset or not a positive integer.
func (DispatchSettings) MaxDeliveryAttempts() int {
	value, err := strconv.Atoi(os.Getenv(envDispatchMaxAttempts))
	if err != nil || value <= 0 {
		return defaultMaxDeliveryAttempts
	}

	return value
}
