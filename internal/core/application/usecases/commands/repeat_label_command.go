package commands

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var (
	ErrRepeatLabelCommandIsNotConstructed = errors.New(
		"RepeatLabelCommand must be created via NewRepeatLabelCommand constructor",
	)
	ErrOrderRefIsRequired       = errors.New("order reference is required")
	ErrExpeditionCodeIsRequired = errors.New("expedition code is required")
)

// RepeatLabelCommand represents a request to render the label of an already
// generated expedition again. The stored shipment code, route and options are
// reused unchanged: a reprint is identical to the original label. The
// expedition is addressed either by its order reference or by its carrier
// code (the warehouse reprints from a barcode scan).
type RepeatLabelCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	code     string

	guard guard.ConstructorGuard
}

// NewRepeatLabelCommand creates a command to reprint the label of the
// expedition generated for an order. Returns an error if the order reference
// is missing.
func NewRepeatLabelCommand(orderRef string) (RepeatLabelCommand, error) {
	repeatCommand := RepeatLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := repeatCommand.setOrderRef(orderRef); err != nil {
		return RepeatLabelCommand{}, err
	}

	return repeatCommand, nil
}

// NewRepeatLabelCommandForCode creates a command to reprint the label of the
// expedition carrying the given carrier code. Returns an error if the code
// is missing.
func NewRepeatLabelCommandForCode(code string) (RepeatLabelCommand, error) {
	if code == "" {
		return RepeatLabelCommand{}, ErrExpeditionCodeIsRequired
	}

	return RepeatLabelCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRepeatLabelCommandIsNotConstructed if validation fails.
func (c RepeatLabelCommand) Validate() error {
	return c.guard.Validate(ErrRepeatLabelCommandIsNotConstructed)
}

// OrderRef returns the order whose label should be reprinted. Empty when the
// command addresses the expedition by carrier code instead.
func (c RepeatLabelCommand) OrderRef() string {
	return c.orderRef
}

// Code returns the carrier code whose label should be reprinted. Empty when
// the command addresses the expedition by order reference instead.
func (c RepeatLabelCommand) Code() string {
	return c.code
}

func (c *RepeatLabelCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return ErrOrderRefIsRequired
	}

	c.orderRef = orderRef
	return nil
}
