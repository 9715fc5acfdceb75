package queries

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var (
	ErrGetExpeditionQueryIsNotConstructed = errors.New(
		"GetExpeditionQuery must be created via NewGetExpeditionQuery constructor",
	)
	ErrOrderRefIsRequired = errors.New("order reference is required")
)

// GetExpeditionQuery retrieves the expedition generated for one order.
type GetExpeditionQuery struct {
	orderRef string

	guard guard.ConstructorGuard
}

// NewGetExpeditionQuery creates a query to retrieve a single expedition by
// its order reference. Returns an error if the reference is missing.
func NewGetExpeditionQuery(orderRef string) (GetExpeditionQuery, error) {
	if orderRef == "" {
		return GetExpeditionQuery{}, ErrOrderRefIsRequired
	}

	return GetExpeditionQuery{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpeditionQueryIsNotConstructed if validation fails.
func (q GetExpeditionQuery) Validate() error {
	return q.guard.Validate(ErrGetExpeditionQueryIsNotConstructed)
}

// OrderRef returns the order whose expedition is requested.
func (q GetExpeditionQuery) OrderRef() string {
	return q.orderRef
}
