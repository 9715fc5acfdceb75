package commands

import (
	"context"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/bus"
)

// RepeatLabelCommandHandler rerenders the label of a stored expedition.
// Nothing about the shipment changes: the same code, route and options are
// projected into fresh markup, with a fresh barcode image when the encoding
// collaborator is available.
type RepeatLabelCommandHandler struct {
	uowFactory ExpeditionUoWFactory
	encoder    ports.RasterEncoder
	renderer   *services.LabelRenderer
	publish    bus.Publish
}

// NewRepeatLabelCommandHandler creates a handler for label reprints.
// A nil publish drops events.
func NewRepeatLabelCommandHandler(
	uowFactory ExpeditionUoWFactory,
	encoder ports.RasterEncoder,
	renderer *services.LabelRenderer,
	publish bus.Publish,
) RepeatLabelCommandHandler {
	if publish == nil {
		publish = bus.Discard
	}

	return RepeatLabelCommandHandler{
		uowFactory: uowFactory,
		encoder:    encoder,
		renderer:   renderer,
		publish:    publish,
	}
}

// Handle processes the reprint command. Returns errs.ObjectNotFoundError
// (via the repository) when no label was ever generated for the order or
// when no expedition carries the given code.
func (h *RepeatLabelCommandHandler) Handle(
	ctx context.Context,
	cmd RepeatLabelCommand,
) (LabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return LabelResult{OrderID: cmd.OrderRef(), Err: err}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LabelResult{OrderID: cmd.OrderRef(), Err: err}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := h.load(ctx, uow.ExpeditionRepository(), cmd)
	if err != nil {
		return LabelResult{OrderID: cmd.OrderRef(), Err: err}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LabelResult{OrderID: cmd.OrderRef(), Err: err}, err
	}

	barcodePNG, encodeErr := h.encoder.Encode(ctx, aggregate.Code(), services.Interleaved2of5)
	if encodeErr != nil {
		barcodePNG = nil
	}
	secondaryPNG, encodeErr := h.encoder.Encode(ctx, aggregate.Code(), services.Code128)
	if encodeErr != nil {
		secondaryPNG = nil
	}

	labelHTML, err := h.renderer.Render(aggregate, barcodePNG)
	if err != nil {
		return LabelResult{OrderID: aggregate.OrderRef(), Err: err}, err
	}

	h.publish(ctx, LabelRepeatedEvent{
		OrderRef: aggregate.OrderRef(),
		Code:     aggregate.Code().String(),
	})

	route := aggregate.Route()
	return LabelResult{
		Success:      true,
		OrderID:      aggregate.OrderRef(),
		Code:         aggregate.Code().String(),
		RouteID:      route.ID,
		RouteColor:   route.Color,
		BarcodePNG:   barcodePNG,
		SecondaryPNG: secondaryPNG,
		LabelHTML:    labelHTML,
		LabelZPL:     services.LabelZPL(aggregate),
	}, nil
}

// load fetches the stored expedition by whichever key the command carries.
func (h *RepeatLabelCommandHandler) load(
	ctx context.Context,
	repo ports.ExpeditionRepository,
	cmd RepeatLabelCommand,
) (*expedition.Expedition, error) {
	if cmd.Code() != "" {
		code, err := kernel.ExpeditionCodeFromString(cmd.Code())
		if err != nil {
			return nil, err
		}
		return repo.GetByCode(ctx, code)
	}

	return repo.GetByOrderRef(ctx, cmd.OrderRef())
}
