package expedition

import (
	"fmt"

	"shiplabel/internal/pkg/errs"
)

// Status represents the lifecycle state of an expedition.
// It implements a state machine with defined transitions; transition authority
// belongs to the external tracking collaborator, the label core only ever
// creates expeditions in Pending.
//
// State transitions:
//
//	Pending ──> InTransit ──> OutForDelivery ──> Delivered
//	   │   \        │      \        │
//	   │    `───────┴───> Incident <┘
//	   │                    │ (recovery back into the chain)
//	   └──────────┬─────────┘
//	              v
//	          Cancelled
//
// Delivered and Cancelled are terminal. Every non-terminal state may move to
// Incident or Cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every freshly built expedition.
	Pending

	// InTransit indicates the parcel is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the parcel is on the delivery route.
	OutForDelivery

	// Delivered indicates the parcel reached the recipient. Terminal.
	Delivered

	// Incident indicates a delivery incident is being handled.
	Incident

	// Cancelled indicates the expedition was voided. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Pending:        "Pending",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Incident:       "Incident",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case Pending, InTransit, OutForDelivery, Delivered, Incident, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to target is a valid
// transition of the expedition state machine.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	if target == Incident {
		return s != Incident
	}

	switch s {
	case Pending:
		return target == InTransit
	case InTransit:
		return target == OutForDelivery || target == Delivered
	case OutForDelivery:
		return target == Delivered
	case Incident:
		return target == InTransit || target == OutForDelivery || target == Delivered
	default:
		return false
	}
}

// TransitionTo moves the status to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
		)
	}
	return target, nil
}
