package catalog

import (
	"shiplabel/internal/pkg/errs"
)

// Catalog is the single source of truth for service metadata and option
// validity. It is built once, never mutated afterwards, and therefore safe
// for unbounded concurrent reads. Pass the same instance by reference to
// every builder and renderer that needs it.
//
// Example usage:
//
//	cat := catalog.NewCatalog()
//
//	def, err := cat.Lookup("31")
//	if err != nil {
//	    // unknown service: building must fail
//	}
//
//	payer, _ := cat.ResolveField("31", catalog.FieldPayer, "D")
//	// payer == "O": "D" is outside the shop service's accepted set,
//	// so the per-service default is substituted
type Catalog struct {
	services map[string]ServiceDefinition
	order    []string
	defaults Defaults
}

// NewCatalog builds the catalog from the built-in carrier service registry.
func NewCatalog() *Catalog {
	return NewCatalogWith(builtinDefinitions())
}

// NewCatalogWith builds a catalog from the given definitions, preserving their
// order. Intended for tests that need a reduced or altered registry.
func NewCatalogWith(defs []ServiceDefinition) *Catalog {
	c := &Catalog{
		services: make(map[string]ServiceDefinition, len(defs)),
		order:    make([]string, 0, len(defs)),
		defaults: builtinDefaults(),
	}
	for _, def := range defs {
		if _, exists := c.services[def.Code]; !exists {
			c.order = append(c.order, def.Code)
		}
		c.services[def.Code] = def
	}
	return c
}

// Lookup returns the definition registered for a service code.
// Returns a ServiceIsUnknownError if the code is not registered.
func (c *Catalog) Lookup(serviceCode string) (ServiceDefinition, error) {
	def, ok := c.services[serviceCode]
	if !ok {
		return ServiceDefinition{}, errs.NewServiceIsUnknownError(serviceCode)
	}
	return def, nil
}

// ResolveField validates a candidate value for one option field of a service.
// If the candidate is a member of the field's accepted set it is returned
// unchanged; otherwise the field's configured per-service default is returned.
// Fields the service defines no rule for resolve to the empty string.
//
// Field-level issues are never surfaced as errors: silent coercion to the
// default is the intended policy. Only an unknown service code fails.
func (c *Catalog) ResolveField(serviceCode, fieldName, candidateValue string) (string, error) {
	def, err := c.Lookup(serviceCode)
	if err != nil {
		return "", err
	}

	rule, ok := def.Rule(fieldName)
	if !ok {
		return "", nil
	}
	if rule.Accepts(candidateValue) {
		return candidateValue, nil
	}
	return rule.Default, nil
}

// All returns every registered service definition in catalog order.
func (c *Catalog) All() []ServiceDefinition {
	defs := make([]ServiceDefinition, 0, len(c.order))
	for _, code := range c.order {
		defs = append(defs, c.services[code])
	}
	return defs
}

// Defaults returns the global defaults table. It applies only before a service
// is resolved (initial form rendering); ResolveField never consults it.
func (c *Catalog) Defaults() Defaults {
	return c.defaults
}
