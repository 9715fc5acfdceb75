package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
)

// TrackingProvider reports the carrier-side status of a shipment.
type TrackingProvider interface {
	// Track returns the current carrier status for the shipment code.
	Track(ctx context.Context, code kernel.ExpeditionCode) (expedition.Status, error)
}
