package commands

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var ErrCancelExpeditionCommandIsNotConstructed = errors.New(
	"CancelExpeditionCommand must be created via NewCancelExpeditionCommand constructor",
)

// CancelExpeditionCommand represents a request to cancel the shipment
// generated for an order before the carrier delivers it.
type CancelExpeditionCommand struct { //nolint:recvcheck //using for validation
	orderRef string

	guard guard.ConstructorGuard
}

// NewCancelExpeditionCommand creates a command to cancel an order's
// expedition. Returns an error if the order reference is missing.
func NewCancelExpeditionCommand(orderRef string) (CancelExpeditionCommand, error) {
	cancelCommand := CancelExpeditionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderRef(orderRef); err != nil {
		return CancelExpeditionCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelExpeditionCommandIsNotConstructed if validation fails.
func (c CancelExpeditionCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpeditionCommandIsNotConstructed)
}

// OrderRef returns the order whose expedition should be cancelled.
func (c CancelExpeditionCommand) OrderRef() string {
	return c.orderRef
}

func (c *CancelExpeditionCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return ErrOrderRefIsRequired
	}

	c.orderRef = orderRef
	return nil
}
