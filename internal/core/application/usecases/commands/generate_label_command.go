package commands

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var (
	ErrGenerateLabelCommandIsNotConstructed = errors.New(
		"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
	ErrParcelsAreInvalid = errors.New("parcels must not be negative")
)

// LabelOptions carries the raw shipment option values submitted with a label
// form. Values are taken as-is: anything a service does not accept is coerced
// to that service's default during generation, never rejected.
type LabelOptions struct {
	Packaging           string
	Payer               string
	CashOnDelivery      string
	CashAmount          string
	Prealert            string
	PrealertMode        string
	PrealertDestination string
	PrealertMessage     string
	Return              string
	Insurance           string
	InsuranceAmount     string
	Parcels             int
	Observations        []string
	Instructions        []string
	Contents            string
	DeclaredValue       string
}

// GenerateLabelCommand represents a request to generate a shipping label for
// a storefront order.
//
// Example:
//
//	cmd, err := NewGenerateLabelCommand("1042", "04", LabelOptions{Payer: "O"})
//	if err != nil {
//	    return fmt.Errorf("invalid label request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("label generation failed: %w", err)
//	}
//	fmt.Printf("Shipment %s on route %s", result.Code, result.RouteID)
type GenerateLabelCommand struct { //nolint:recvcheck //using for validation
	orderID string
	service string
	options LabelOptions

	guard guard.ConstructorGuard
}

// NewGenerateLabelCommand creates a command to generate a label for an order.
// The service code is optional: when empty the order's purchased shipping
// service is used, falling back to the catalog default. Options are optional
// for the same reason. Returns an error if the order id is missing or the
// parcel count is negative.
func NewGenerateLabelCommand(orderID, service string, options LabelOptions) (GenerateLabelCommand, error) {
	labelCommand := GenerateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		labelCommand.setOrderID(orderID),
		labelCommand.setOptions(service, options),
	); err != nil {
		return GenerateLabelCommand{}, err
	}

	return labelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateLabelCommandIsNotConstructed if validation fails.
func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

// OrderID returns the storefront identifier of the order to label.
func (c GenerateLabelCommand) OrderID() string {
	return c.orderID
}

// Service returns the explicit service code override, or "" when the order's
// own service should be used.
func (c GenerateLabelCommand) Service() string {
	return c.service
}

// Options returns the raw shipment options submitted with the request.
func (c GenerateLabelCommand) Options() LabelOptions {
	return c.options
}

func (c *GenerateLabelCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateLabelCommand) setOptions(service string, options LabelOptions) error {
	if options.Parcels < 0 {
		return ErrParcelsAreInvalid
	}

	c.service = service
	c.options = options
	return nil
}
