package commands

import (
	"context"

	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/bus"
)

// RefreshTrackingCommandHandler polls the carrier for every active
// expedition and applies the reported status. An unreachable carrier or an
// invalid transition skips that shipment; the refresh continues with the
// rest.
type RefreshTrackingCommandHandler struct {
	uowFactory ExpeditionUoWFactory
	tracker    ports.TrackingProvider
	publish    bus.Publish
}

// NewRefreshTrackingCommandHandler creates a handler for tracking refresh
// operations. A nil publish drops events.
func NewRefreshTrackingCommandHandler(
	uowFactory ExpeditionUoWFactory,
	tracker ports.TrackingProvider,
	publish bus.Publish,
) RefreshTrackingCommandHandler {
	if publish == nil {
		publish = bus.Discard
	}

	return RefreshTrackingCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		publish:    publish,
	}
}

// Handle processes the tracking refresh command. Retrieves all active
// expeditions, queries the carrier for each and persists every status that
// moved, all within a single transaction.
func (h *RefreshTrackingCommandHandler) Handle(ctx context.Context, cmd RefreshTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ExpeditionRepository()

	active, err := repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	var changed []ExpeditionStatusChangedEvent
	for _, aggregate := range active {
		reported, trackErr := h.tracker.Track(ctx, aggregate.Code())
		if trackErr != nil {
			continue
		}

		previous := aggregate.Status()
		if reported == previous {
			continue
		}

		if applyErr := aggregate.ApplyStatus(reported); applyErr != nil {
			continue
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}

		changed = append(changed, ExpeditionStatusChangedEvent{
			OrderRef: aggregate.OrderRef(),
			Code:     aggregate.Code().String(),
			From:     previous.String(),
			To:       reported.String(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range changed {
		h.publish(ctx, event)
	}

	return nil
}
