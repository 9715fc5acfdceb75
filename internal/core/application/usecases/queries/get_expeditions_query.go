// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shiplabel/internal/pkg/guard"
)

var (
	ErrGetExpeditionsQueryIsNotConstructed = errors.New(
		"GetExpeditionsQuery must be created via NewGetExpeditionsQuery constructor",
	)
)

// GetExpeditionsQuery retrieves the generated expeditions, newest first,
// optionally narrowed to a single status. Returns flat read models for the
// shipment listing screens.
//
// Example:
//
//	query := NewGetExpeditionsQuery("Pending")
//	handler := NewGetExpeditionsQueryHandler(db)
//
//	expeditions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve expeditions: %w", err)
//	}
//
//	for _, e := range expeditions {
//	    fmt.Printf("%s -> %s (%s)\n", e.OrderRef, e.Code, e.Status)
//	}
type GetExpeditionsQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetExpeditionsQuery creates a query to retrieve expeditions.
// status narrows the listing to one status name; "" lists everything.
func NewGetExpeditionsQuery(status string) GetExpeditionsQuery {
	return GetExpeditionsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpeditionsQueryIsNotConstructed if validation fails.
func (q GetExpeditionsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpeditionsQueryIsNotConstructed)
}

// Status returns the status filter, or "" for no filter.
func (q GetExpeditionsQuery) Status() string {
	return q.status
}

// ExpeditionResponse is the flat read model of one generated expedition.
// Carries what the listing and detail screens show: shipment identity,
// recipient summary, route badge and lifecycle state.
type ExpeditionResponse struct {
	OrderRef      string
	Code          string
	SecondaryCode string
	Status        string
	ServiceCode   string
	ServiceName   string
	RecipientName string
	City          string
	PostalCode    string
	Country       string
	Agency        string
	Parcels       int
	RouteID       string
	RouteColor    string
	RouteZone     string
	ShipmentDate  time.Time
	CreatedAt     time.Time
}
