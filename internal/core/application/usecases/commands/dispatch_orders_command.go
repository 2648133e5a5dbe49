package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDispatchOrdersCommandIsNotConstructed = errors.New(
	"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
)

// DispatchOrdersCommand represents a request to run one dispatch cycle over
// all currently eligible orders.
type DispatchOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAttempts int

	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a command to run a dispatch cycle.
// maxAttempts is the eligibility cutoff for the per-order delivery-attempt
// counter and must be positive.
func NewDispatchOrdersCommand(maxAttempts int) (DispatchOrdersCommand, error) {
	dispatchCommand := DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := dispatchCommand.setMaxAttempts(maxAttempts); err != nil {
		return DispatchOrdersCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrdersCommandIsNotConstructed if validation fails.
func (c DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}

// MaxAttempts returns the eligibility cutoff for the delivery-attempt counter.
func (c DispatchOrdersCommand) MaxAttempts() int {
	return c.maxAttempts
}

func (c *DispatchOrdersCommand) setMaxAttempts(maxAttempts int) error {
	if maxAttempts <= 0 {
		return errs.NewValueIsInvalidError("maxAttempts")
	}

	c.maxAttempts = maxAttempts
	return nil
}
