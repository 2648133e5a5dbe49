package order

import (
	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Sent ──> Processed
//	          │
//	          └──> Cancelled
//
// A failed delivery attempt does not change the status: the order stays
// Created and only its attempt counter grows, so it remains eligible for a
// later dispatch cycle until the configured maximum is reached.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting to be dispatched downstream.
	Created

	// Sent indicates the order was successfully delivered to the
	// destination system.
	Sent

	// Processed indicates the destination system confirmed processing.
	// This is a final state with no further transitions allowed.
	Processed

	// Cancelled indicates the order was cancelled before dispatch, with a
	// recorded justification. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Sent:      "Sent",
		Processed: "Processed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Sent:      "Sent",
		Processed: "Processed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as produced by String.
// Used when decoding status filters from transport or persistence.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks if the Status value is one of the valid lifecycle states.
// Unknown (0) and any other values are invalid. Used to ensure Status
// values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
// Sent is functionally terminal too once no downstream confirmation occurs,
// but the machine still allows Sent -> Processed.
func (s Status) IsTerminal() bool {
	return s == Processed || s == Cancelled
}

// Send transitions the status to Sent.
//
// Valid transitions:
//   - Created -> Sent (successful delivery to the destination system)
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Send() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError(s.String(), "send")
	}

	return Sent, nil
}

// Process transitions the status to Processed.
//
// Valid transitions:
//   - Sent -> Processed (downstream confirmed processing)
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Process() (Status, error) {
	if s != Sent {
		return 0, errs.NewInvalidTransitionError(s.String(), "process")
	}

	return Processed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//
// An order that is already Sent, Processed or Cancelled can no longer be
// cancelled; the error signals "already processing or cancelled".
func (s Status) Cancel() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}

	return Cancelled, nil
}
