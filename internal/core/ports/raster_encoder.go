package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
)

// RasterEncoder renders a shipment code into a barcode image through an
// external encoding collaborator. A failure here is never fatal to label
// generation: callers degrade to the textual barcode rendering.
type RasterEncoder interface {
	// Encode renders the code in the given symbology and returns the PNG
	// bytes. The code-128 symbology renders the 841 companion code rather
	// than the primary 840 code. Returns errs.RenderFailedError when the
	// collaborator cannot produce an image.
	Encode(ctx context.Context, code kernel.ExpeditionCode, symbology services.Symbology) ([]byte, error)
}
