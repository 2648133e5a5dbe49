// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of error kinds:
//   - Generic validation failures: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError
//   - Order-domain failures: DuplicateOrderError, InvalidTransitionError,
//     DeliveryFailedError, PersistenceFailureError, plus the ErrCircuitOpen
//     sentinel reported by the delivery channel while its breaker is open
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrDuplicateOrder)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The sentinel gives every failure a stable machine-readable kind; the struct
// carries the human message. Transport adapters map kinds to status codes,
// and the dispatch engine classifies per-order outcomes, without either ever
// parsing message text.
package errs
