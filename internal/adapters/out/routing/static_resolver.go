// Package routing implements route assignment from a static sorting table.
// The warehouse sorts domestic shipments by destination province (the first
// two postal code digits) and funnels everything international through a
// single lane, so the table mirrors the physical layout.
package routing

import (
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
)

// overflowRoute receives every shipment the table has no dedicated lane for.
var overflowRoute = expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"}

// internationalRoute receives every shipment on an international service,
// regardless of destination.
var internationalRoute = expedition.Route{ID: "R900", Color: "#7030A0", Zone: "INTERNACIONAL"}

// provinceRoutes maps the two-digit province prefix of a Spanish postal code
// to its sorting lane.
var provinceRoutes = map[string]expedition.Route{
	"08": {ID: "R001", Color: "#FF5000", Zone: "BARCELONA"},
	"28": {ID: "R002", Color: "#0070C0", Zone: "MADRID"},
	"46": {ID: "R003", Color: "#FFC000", Zone: "VALENCIA"},
	"41": {ID: "R004", Color: "#C00000", Zone: "SEVILLA"},
	"48": {ID: "R005", Color: "#00B0F0", Zone: "BILBAO"},
	"50": {ID: "R006", Color: "#92D050", Zone: "ZARAGOZA"},
	"29": {ID: "R007", Color: "#E36C0A", Zone: "MALAGA"},
	"15": {ID: "R008", Color: "#7F7F7F", Zone: "A CORUNA"},
	"03": {ID: "R009", Color: "#00B050", Zone: "ALICANTE"},
	"35": {ID: "R010", Color: "#002060", Zone: "LAS PALMAS"},
}

// StaticResolver assigns sorting routes from the fixed warehouse table.
// It implements ports.RouteResolver.
type StaticResolver struct{}

// NewStaticResolver creates a resolver over the built-in sorting table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// Resolve returns the sorting route for a destination. Equal inputs always
// resolve to the same route, so a reprinted label carries the same badge as
// the original.
func (r *StaticResolver) Resolve(postalCode string, family catalog.Family) expedition.Route {
	if family == catalog.FamilyInternational {
		return internationalRoute
	}

	if len(postalCode) < 2 {
		return overflowRoute
	}

	if route, ok := provinceRoutes[postalCode[:2]]; ok {
		return route
	}

	return overflowRoute
}
