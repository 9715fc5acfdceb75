package commands

import (
	"context"

	"shiplabel/internal/pkg/bus"
)

// CancelExpeditionCommandHandler cancels a shipment. The transition is
// guarded by the expedition status machine: delivered and already cancelled
// shipments reject the cancellation.
type CancelExpeditionCommandHandler struct {
	uowFactory ExpeditionUoWFactory
	publish    bus.Publish
}

// NewCancelExpeditionCommandHandler creates a handler for expedition
// cancellation. A nil publish drops events.
func NewCancelExpeditionCommandHandler(
	uowFactory ExpeditionUoWFactory,
	publish bus.Publish,
) CancelExpeditionCommandHandler {
	if publish == nil {
		publish = bus.Discard
	}

	return CancelExpeditionCommandHandler{
		uowFactory: uowFactory,
		publish:    publish,
	}
}

// Handle processes the cancellation command. Loads the expedition by its
// order reference, applies the cancel transition and persists the change
// within a single transaction.
func (h *CancelExpeditionCommandHandler) Handle(
	ctx context.Context,
	cmd CancelExpeditionCommand,
) error {
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

	aggregate, err := repo.GetByOrderRef(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ExpeditionCancelledEvent{
		OrderRef: aggregate.OrderRef(),
		Code:     aggregate.Code().String(),
	})

	return nil
}
