// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping-label system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Printer-command rendering: deterministic ZPL and TPCL command streams for
//     thermal printers, plus the laser passthrough mode
//   - LabelRenderer: projection of an expedition and its barcode artifact into
//     the fixed-zone print-preview markup
//
// Both services are pure: equal inputs always produce byte-identical output,
// and nothing here mutates an expedition or calls a collaborator.
package services
