// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish dependency inversion boundaries
// for persistence, the raster encoding service, routing, shipment-code
// sequencing and the order source, enabling testability of the handlers.
package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
)

// ExpeditionRepository defines the persistence contract for expedition
// aggregates. An expedition is keyed externally by its order reference:
// regenerating a label for the same order replaces the stored expedition
// rather than accumulating duplicates.
type ExpeditionRepository interface {
	// Add persists a new expedition aggregate to storage.
	// The expedition must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *expedition.Expedition) error

	// Update persists changes to an existing expedition aggregate.
	// The expedition must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *expedition.Expedition) error

	// GetByOrderRef retrieves the expedition generated for an order.
	// Returns errs.ObjectNotFoundError when no label was ever generated
	// for the reference.
	GetByOrderRef(ctx context.Context, orderRef string) (*expedition.Expedition, error)

	// GetByCode retrieves an expedition by its carrier shipment code.
	GetByCode(ctx context.Context, code kernel.ExpeditionCode) (*expedition.Expedition, error)

	// GetAllActive retrieves every expedition in a non-terminal status,
	// ordered by creation time. Used by the tracking refresh job.
	GetAllActive(ctx context.Context) ([]*expedition.Expedition, error)
}
