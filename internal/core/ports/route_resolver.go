package ports

import (
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
)

// RouteResolver assigns a sorting route to a shipment. Resolution is
// deterministic: the same destination and service family always map to the
// same route, so reprints carry the same badge as the original label.
type RouteResolver interface {
	// Resolve returns the route for a destination postal code and service
	// family. Never fails: unknown destinations map to the overflow route.
	Resolve(postalCode string, family catalog.Family) expedition.Route
}
