package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the caller-supplied identity and the order's line items.
//
// Example:
//
//	lines := []order.Line{line}
//	cmd, err := NewCreateOrderCommand(101, 1001, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, toggles)
//	snapshot, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	externalID int64
	customerID int64
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both identifiers are positive and that at least one
// constructed line is present. Returns an error if any validation fails.
func NewCreateOrderCommand(externalID, customerID int64, lines []order.Line) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setExternalID(externalID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ExternalID returns the caller-assigned order identifier.
func (c CreateOrderCommand) ExternalID() int64 {
	return c.externalID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Lines returns the order's line items.
func (c CreateOrderCommand) Lines() []order.Line {
	linesCopy := make([]order.Line, len(c.lines))
	copy(linesCopy, c.lines)

	return linesCopy
}

func (c *CreateOrderCommand) setExternalID(externalID int64) error {
	if externalID <= 0 {
		return errs.NewValueIsInvalidError("externalID")
	}

	c.externalID = externalID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]order.Line, len(lines))
	copy(c.lines, lines)

	return nil
}
