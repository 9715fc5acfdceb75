// Package expedition provides the domain entity for carrier expeditions: the
// shipment records derived from orders that labels are printed for.
//
// The package includes:
//   - Expedition: the aggregate root holding the carrier code, recipient,
//     resolved service, validated option fields and route assignment
//   - Status: a state machine that enforces valid expedition status transitions
//
// Key business rules:
//   - Expeditions are created exactly once, in Pending status, with every
//     option field already validated against the owning service's accepted set
//   - After creation the only permitted mutation is a status transition;
//     no field is ever re-validated or re-derived
//   - Delivered and Cancelled are terminal; every non-terminal status may
//     transition to Incident
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package expedition
