// Package system provides wall-clock time to the application layer.
package system

import "time"

// Clock reports the current time in UTC.
type Clock struct{}

// NewClock creates a wall clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current UTC time.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}
