package commands

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var (
	ErrGenerateLabelsCommandIsNotConstructed = errors.New(
		"GenerateLabelsCommand must be created via NewGenerateLabelsCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// GenerateLabelsCommand represents a request to generate labels for a batch
// of storefront orders with a shared service and option set.
//
// Example:
//
//	cmd, err := NewGenerateLabelsCommand([]string{"1042", "1043"}, "", LabelOptions{})
//	if err != nil {
//	    return err
//	}
//
//	batch, _ := handler.Handle(ctx, cmd)
//	fmt.Printf("%d generated, %d failed", batch.Generated, batch.Failed)
type GenerateLabelsCommand struct { //nolint:recvcheck //using for validation
	orderIDs []string
	service  string
	options  LabelOptions

	guard guard.ConstructorGuard
}

// NewGenerateLabelsCommand creates a command to generate labels for several
// orders at once. Service and options follow the same rules as
// NewGenerateLabelCommand and apply to every order in the batch. Returns an
// error if the batch is empty or contains an empty order id.
func NewGenerateLabelsCommand(orderIDs []string, service string, options LabelOptions) (GenerateLabelsCommand, error) {
	batchCommand := GenerateLabelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setOrderIDs(orderIDs),
		batchCommand.setOptions(service, options),
	); err != nil {
		return GenerateLabelsCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateLabelsCommandIsNotConstructed if validation fails.
func (c GenerateLabelsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelsCommandIsNotConstructed)
}

// OrderIDs returns the storefront identifiers of the orders to label,
// in submission order.
func (c GenerateLabelsCommand) OrderIDs() []string {
	out := make([]string, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

// Service returns the explicit service code override, or "" when each
// order's own service should be used.
func (c GenerateLabelsCommand) Service() string {
	return c.service
}

// Options returns the shared shipment options for the batch.
func (c GenerateLabelsCommand) Options() LabelOptions {
	return c.options
}

func (c *GenerateLabelsCommand) setOrderIDs(orderIDs []string) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if id == "" {
			return ErrOrderIDIsRequired
		}
	}

	c.orderIDs = make([]string, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}

func (c *GenerateLabelsCommand) setOptions(service string, options LabelOptions) error {
	if options.Parcels < 0 {
		return ErrParcelsAreInvalid
	}

	c.service = service
	c.options = options
	return nil
}
