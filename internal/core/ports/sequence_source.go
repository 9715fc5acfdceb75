package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/kernel"
)

// SequenceSource allocates shipment sequence numbers per agency. Each call
// returns a number never handed out before for that agency, so two concurrent
// label generations can never produce the same expedition code.
type SequenceSource interface {
	// Next returns the next free sequence number for the agency,
	// in the range accepted by kernel.GenerateExpeditionCode.
	Next(ctx context.Context, agency kernel.Agency) (int, error)
}
