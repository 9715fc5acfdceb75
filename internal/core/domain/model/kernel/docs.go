// Package kernel provides core domain primitives for the shipping-label system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - ExpeditionCode: A value object for the 15-digit carrier code with its modulo-10 check digit
//   - Agency: A value object for the carrier client/agency identifier ("NNNN" or "NNNN/NNN")
//   - Department: A value object for the department identifier within an agency
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use. Zero values are
// invalid and rejected by Validate, which forces construction through the
// provided factory functions.
package kernel
