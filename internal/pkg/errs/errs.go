package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. Callers classify failures with
// errors.Is against these, never by matching message text.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrDuplicateOrder     = errors.New("order already exists")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDeliveryFailed     = errors.New("delivery failed")
	ErrCircuitOpen        = errors.New("circuit is open")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a parameter failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying error.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric parameter fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying error.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required parameter was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying error.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// DuplicateOrderError indicates an order with the same external id already exists.
// External order ids are globally unique and never reused.
type DuplicateOrderError struct {
	ExternalID int64
	Cause      error
}

// NewDuplicateOrderError creates a DuplicateOrderError for the given external order id.
func NewDuplicateOrderError(externalID int64) *DuplicateOrderError {
	return &DuplicateOrderError{ExternalID: externalID}
}

// NewDuplicateOrderErrorWithCause creates a DuplicateOrderError wrapping an underlying error.
func NewDuplicateOrderErrorWithCause(externalID int64, cause error) *DuplicateOrderError {
	return &DuplicateOrderError{ExternalID: externalID, Cause: cause}
}

func (e *DuplicateOrderError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %d (cause: %s)", ErrDuplicateOrder, e.ExternalID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %d", ErrDuplicateOrder, e.ExternalID))
}

func (e *DuplicateOrderError) Unwrap() error {
	return ErrDuplicateOrder
}

// InvalidTransitionError indicates an order operation was attempted from a
// status that does not permit it.
type InvalidTransitionError struct {
	From  string
	Op    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for an operation
// attempted from the given status.
func NewInvalidTransitionError(from, op string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Op: op}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying error.
func NewInvalidTransitionErrorWithCause(from, op string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Op: op, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s from %s (cause: %s)", ErrInvalidTransition, e.Op, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s from %s", ErrInvalidTransition, e.Op, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DeliveryFailedError indicates the delivery channel exhausted its retry
// budget for a single send. The order stays eligible for a later cycle.
type DeliveryFailedError struct {
	ExternalID int64
	Cause      error
}

// NewDeliveryFailedError creates a DeliveryFailedError wrapping the final attempt's error.
func NewDeliveryFailedError(externalID int64, cause error) *DeliveryFailedError {
	return &DeliveryFailedError{ExternalID: externalID, Cause: cause}
}

func (e *DeliveryFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order %d (cause: %s)", ErrDeliveryFailed, e.ExternalID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order %d", ErrDeliveryFailed, e.ExternalID))
}

func (e *DeliveryFailedError) Unwrap() error {
	return ErrDeliveryFailed
}

// PersistenceFailureError indicates the store failed to durably commit a
// batch. Fatal for the current dispatch cycle; prior durable state is unchanged.
type PersistenceFailureError struct {
	Op    string
	Cause error
}

// NewPersistenceFailureError creates a PersistenceFailureError wrapping the storage error.
func NewPersistenceFailureError(op string, cause error) *PersistenceFailureError {
	return &PersistenceFailureError{Op: op, Cause: cause}
}

func (e *PersistenceFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailure, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Op))
}

func (e *PersistenceFailureError) Unwrap() error {
	return ErrPersistenceFailure
}
