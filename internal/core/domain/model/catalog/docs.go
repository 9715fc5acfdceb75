// Package catalog provides the static registry of shipping service definitions
// and their per-field validation rules.
//
// The package includes:
//   - ServiceDefinition: metadata for one delivery product, including its
//     validation table (accepted values and default per option field)
//   - FieldRule: the accepted set and default value for a single option field
//   - Family: the service family (standard, shop, international)
//   - Catalog: the immutable registry with Lookup and ResolveField
//
// Key business rules:
//   - An unknown service code always fails Lookup; no expedition can be
//     built for it
//   - Option values outside a service's accepted set are silently coerced to
//     that service's configured default, never rejected
//   - Per-service defaults take precedence over the global defaults table,
//     which only applies before a service is resolved (form rendering)
//
// The catalog is loaded once at construction and never mutated afterwards,
// making it safe for unbounded concurrent reads.
package catalog
