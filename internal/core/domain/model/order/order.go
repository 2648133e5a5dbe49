package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Tax rates applied by ComputeTax, in percent. Which one applies is decided
// by a runtime feature toggle at creation time.
const (
	newTaxRatePct    = 20
	legacyTaxRatePct = 30
)

// Order is the aggregate root managing an order's lifecycle from creation
// through dispatch to the destination system, or cancellation.
//
// Order maintains these invariants:
//   - The external order id is positive and globally unique (uniqueness is
//     enforced by the store; the aggregate only validates shape)
//   - An order has at least one line
//   - Tax is recomputed only while the order is still Created
//   - The delivery attempt counter only ever increases
//   - A cancellation justification is present iff the order is Cancelled
//   - The dispatch timestamp is set once, on the first successful send
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Mutations happen either through the
// cancellation operation or through the dispatch engine; the two never race
// on the same instance.
type Order struct {
	// id is the internal surrogate identifier
	id kernel.UUID

	// externalID is the caller-supplied order id, unique across all orders
	externalID int64

	// customerID identifies the ordering customer
	customerID int64

	// lines is the ordered sequence of line items (never empty)
	lines []Line

	// tax is the computed tax amount (non-negative, cent precision)
	tax kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// cancellationReason is set iff status is Cancelled
	cancellationReason string

	// createdAt is the UTC creation timestamp, set once
	createdAt time.Time

	// sentAt is the UTC dispatch timestamp, set on first successful send
	sentAt *time.Time

	// deliveryAttempts counts failed delivery attempts
	deliveryAttempts int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Created status with zero delivery
// attempts. The tax amount starts at zero; callers are expected to invoke
// ComputeTax before the order is persisted.
//
// Parameters:
//   - id: internal surrogate identifier (must be a valid UUID)
//   - externalID: caller-supplied order id (must be positive)
//   - customerID: ordering customer id (must be positive)
//   - lines: at least one validated order line
//   - createdAt: creation timestamp from the domain clock (must be non-zero)
func NewOrder(
	id kernel.UUID,
	externalID int64,
	customerID int64,
	lines []Line,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setExternalID(externalID),
		order.setCustomerID(customerID),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, checking the
// cross-field consistency rules that a freshly created order cannot violate:
// a cancellation reason is only legal for Cancelled orders, a dispatch
// timestamp only for Sent or Processed ones, and the attempt counter is
// never negative.
func RestoreOrder(
	id kernel.UUID,
	externalID int64,
	customerID int64,
	lines []Line,
	tax kernel.Money,
	status Status,
	cancellationReason string,
	createdAt time.Time,
	sentAt *time.Time,
	deliveryAttempts int,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setExternalID(externalID),
		order.setCustomerID(customerID),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if (cancellationReason != "") != (status == Cancelled) {
		return nil, errs.NewValueIsInvalidErrorWithCause("cancellationReason",
			fmt.Errorf("justification presence does not match status %s", status))
	}

	if (sentAt != nil) != (status == Sent || status == Processed) {
		return nil, errs.NewValueIsInvalidErrorWithCause("sentAt",
			fmt.Errorf("dispatch timestamp presence does not match status %s", status))
	}

	if deliveryAttempts < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryAttempts",
			fmt.Errorf("%d is negative", deliveryAttempts))
	}

	order.tax = tax
	order.status = status
	order.cancellationReason = cancellationReason
	order.sentAt = sentAt
	order.deliveryAttempts = deliveryAttempts

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalID returns the caller-supplied order id.
func (o *Order) ExternalID() int64 {
	return o.externalID
}

// CustomerID returns the ordering customer's id.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Tax returns the computed tax amount.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CancellationReason returns the justification recorded by Cancel.
// Empty unless the order is Cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SentAt returns the UTC dispatch timestamp, or nil if the order was never
// successfully sent.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// DeliveryAttempts returns the number of failed delivery attempts so far.
func (o *Order) DeliveryAttempts() int {
	return o.deliveryAttempts
}

// LinesTotal returns the sum of quantity times unit price over all lines.
func (o *Order) LinesTotal() kernel.Money {
	var total kernel.Money
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

// ComputeTax computes and stores the tax amount for the order:
// 20% of the lines total under the new rule, 30% under the legacy rule.
//
// Legal only while the order is Created; tax never changes once the order
// has left its initial state. Calling it later is a programming error and is
// reported as an InvalidTransitionError.
func (o *Order) ComputeTax(useNewRule bool) error {
	if o.status != Created {
		return errs.NewInvalidTransitionError(o.status.String(), "compute tax")
	}

	rate := int64(legacyTaxRatePct)
	if useNewRule {
		rate = newTaxRatePct
	}

	o.tax = o.LinesTotal().Percent(rate)
	return nil
}

// MarkSent records a successful delivery to the destination system: the
// status becomes Sent and the dispatch timestamp is set.
//
// Legal only from Created; fails with InvalidTransitionError otherwise.
func (o *Order) MarkSent(now time.Time) error {
	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}

	sentAt := now.UTC()
	o.status = newStatus
	o.sentAt = &sentAt
	return nil
}

// MarkDeliveryFailed records a failed delivery attempt: the counter grows by
// one and the status stays Created, keeping the order eligible for a later
// dispatch cycle until the configured maximum is reached.
//
// Legal only from Created; fails with InvalidTransitionError otherwise.
func (o *Order) MarkDeliveryFailed() error {
	if o.status != Created {
		return errs.NewInvalidTransitionError(o.status.String(), "record delivery failure")
	}

	o.deliveryAttempts++
	return nil
}

// MarkProcessed records downstream confirmation of a sent order.
//
// Legal only from Sent; fails with InvalidTransitionError otherwise.
func (o *Order) MarkProcessed() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled and records the justification.
// The justification must be non-empty.
//
// Legal only from Created; a Sent, Processed or already Cancelled order
// fails with InvalidTransitionError and keeps its current status.
func (o *Order) Cancel(justification string) error {
	if justification == "" {
		return errs.NewValueIsRequiredError("justification")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = justification
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalID(externalID int64) error {
	if externalID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("externalID",
			fmt.Errorf("%d is not greater than 0", externalID))
	}
	o.externalID = externalID
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d]", i), err)
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
