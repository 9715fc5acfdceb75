package commands

import (
	"errors"

	"shiplabel/internal/pkg/guard"
)

var ErrRefreshTrackingCommandIsNotConstructed = errors.New(
	"RefreshTrackingCommand must be created via NewRefreshTrackingCommand constructor",
)

// RefreshTrackingCommand triggers a carrier status refresh of every active
// expedition. This batch operation advances shipment statuses as the carrier
// reports progress.
//
// Example:
//
//	cmd := NewRefreshTrackingCommand()
//	handler := NewRefreshTrackingCommandHandler(uowFactory, tracker, publish)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Tracking refresh failed: %v", err)
//	}
type RefreshTrackingCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshTrackingCommand creates a command to refresh tracking statuses.
// This is a parameterless command that processes all active expeditions.
func NewRefreshTrackingCommand() RefreshTrackingCommand {
	command := RefreshTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshTrackingCommandIsNotConstructed if validation fails.
func (c *RefreshTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTrackingCommandIsNotConstructed)
}
