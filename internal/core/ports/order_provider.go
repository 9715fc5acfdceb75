package ports

import (
	"context"
)

// Order is the storefront view of an order as far as label generation needs
// it: who receives the parcel, where it goes and what shipping was bought.
type Order struct {
	ID            string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	Total         string
	ServiceCode   string
	Parcels       int
	Observations  []string
	Instructions  []string
	Contents      string
	DeclaredValue string
}

// OrderProvider fetches orders from the storefront backing the label forms.
type OrderProvider interface {
	// GetOrder retrieves an order by its storefront identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	GetOrder(ctx context.Context, id string) (Order, error)
}
