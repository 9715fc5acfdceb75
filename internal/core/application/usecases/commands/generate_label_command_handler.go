package commands

import (
	"context"
	"errors"
	"time"

	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/bus"
	"shiplabel/internal/pkg/errs"
)

// LabelResult is the outcome of one label generation. On failure Success is
// false and Err carries the cause; the other fields describe the generated
// shipment and its rendered label.
//
// BarcodePNG and SecondaryPNG are nil when the encoding collaborator failed;
// the label markup degrades to the textual barcode in that case, so a nil
// image never means a missing code. LabelZPL carries the thermal-printer
// rendition of the same label.
type LabelResult struct {
	Success      bool
	OrderID      string
	Code         string
	RouteID      string
	RouteColor   string
	BarcodePNG   []byte
	SecondaryPNG []byte
	LabelHTML    string
	LabelZPL     string
	Err          error
}

// GenerateLabelCommandHandler orchestrates single-label generation: it loads
// the order, resolves the service and its option values against the catalog,
// allocates a shipment code, assigns a route, renders the label and persists
// the expedition.
//
// A raster encoding failure does not fail the command: the label falls back
// to the textual barcode rendering.
type GenerateLabelCommandHandler struct {
	uowFactory ExpeditionUoWFactory
	orders     ports.OrderProvider
	catalog    *catalog.Catalog
	sequences  ports.SequenceSource
	routes     ports.RouteResolver
	encoder    ports.RasterEncoder
	renderer   *services.LabelRenderer
	cfg        CarrierConfig
	publish    bus.Publish
	now        func() time.Time
}

// NewGenerateLabelCommandHandler creates a handler for label generation.
// A nil publish drops events.
func NewGenerateLabelCommandHandler(
	uowFactory ExpeditionUoWFactory,
	orders ports.OrderProvider,
	serviceCatalog *catalog.Catalog,
	sequences ports.SequenceSource,
	routes ports.RouteResolver,
	encoder ports.RasterEncoder,
	renderer *services.LabelRenderer,
	cfg CarrierConfig,
	publish bus.Publish,
) GenerateLabelCommandHandler {
	if publish == nil {
		publish = bus.Discard
	}

	return GenerateLabelCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		catalog:    serviceCatalog,
		sequences:  sequences,
		routes:     routes,
		encoder:    encoder,
		renderer:   renderer,
		cfg:        cfg,
		publish:    publish,
		now:        time.Now,
	}
}

// Handle processes the label generation command. The returned LabelResult
// mirrors the error so batch callers can collect per-order outcomes; the
// error itself is also returned for single-shot callers.
func (h *GenerateLabelCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateLabelCommand,
) (LabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	order, err := h.orders.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	serviceCode := cmd.Service()
	if serviceCode == "" {
		serviceCode = order.ServiceCode
	}
	if serviceCode == "" {
		serviceCode = h.catalog.Defaults().Service
	}

	def, err := h.catalog.Lookup(serviceCode)
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	options, err := h.resolveOptions(def.Code, order, cmd.Options())
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	sequence, err := h.sequences.Next(ctx, h.cfg.Agency)
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	code, err := kernel.GenerateExpeditionCode(h.cfg.Agency, sequence)
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	route := h.routes.Resolve(order.PostalCode, def.Family)

	aggregate, err := expedition.NewExpedition(expedition.NewExpeditionParams{
		OrderRef: order.ID,
		Code:     code,
		Recipient: expedition.Recipient{
			Name:       order.CustomerName,
			Address:    order.Address,
			City:       order.City,
			PostalCode: order.PostalCode,
			Country:    order.Country,
			Phone:      order.Phone,
			Email:      order.Email,
		},
		Service: expedition.ServiceInfo{
			Code:   def.Code,
			Name:   labelServiceName(def),
			Family: def.Family,
		},
		Agency:       h.cfg.Agency,
		Department:   h.cfg.Department,
		ShipmentDate: h.now(),
		Parcels:      h.parcels(order, cmd.Options()),
		Options:      options,
		Route:        route,
	})
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	// Best effort: a broken encoding collaborator degrades the label to the
	// textual barcode, it never blocks shipping.
	barcodePNG, encodeErr := h.encoder.Encode(ctx, code, services.Interleaved2of5)
	if encodeErr != nil {
		barcodePNG = nil
	}
	secondaryPNG, encodeErr := h.encoder.Encode(ctx, code, services.Code128)
	if encodeErr != nil {
		secondaryPNG = nil
	}

	labelHTML, err := h.renderer.Render(aggregate, barcodePNG)
	if err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	if err = h.persist(ctx, aggregate); err != nil {
		return h.fail(cmd.OrderID(), err)
	}

	h.publish(ctx, LabelGeneratedEvent{
		OrderRef: aggregate.OrderRef(),
		Code:     aggregate.Code().String(),
		RouteID:  route.ID,
	})

	return LabelResult{
		Success:      true,
		OrderID:      cmd.OrderID(),
		Code:         aggregate.Code().String(),
		RouteID:      route.ID,
		RouteColor:   route.Color,
		BarcodePNG:   barcodePNG,
		SecondaryPNG: secondaryPNG,
		LabelHTML:    labelHTML,
		LabelZPL:     services.LabelZPL(aggregate),
	}, nil
}

// resolveOptions coerces every submitted option through the service's
// validation table. Free-text fields pass through untouched.
func (h *GenerateLabelCommandHandler) resolveOptions(
	serviceCode string,
	order ports.Order,
	raw LabelOptions,
) (expedition.Options, error) {
	resolved := expedition.Options{
		PrealertMode:        raw.PrealertMode,
		PrealertDestination: raw.PrealertDestination,
		PrealertMessage:     raw.PrealertMessage,
		CashAmount:          raw.CashAmount,
		InsuranceAmount:     raw.InsuranceAmount,
		Observations:        concat(raw.Observations, order.Observations),
		Instructions:        concat(raw.Instructions, order.Instructions),
		Contents:            raw.Contents,
		DeclaredValue:       raw.DeclaredValue,
	}
	if resolved.Contents == "" {
		resolved.Contents = order.Contents
	}
	if resolved.DeclaredValue == "" {
		resolved.DeclaredValue = order.DeclaredValue
	}

	fields := []struct {
		name      string
		candidate string
		target    *string
	}{
		{catalog.FieldPackaging, raw.Packaging, &resolved.Packaging},
		{catalog.FieldPayer, raw.Payer, &resolved.Payer},
		{catalog.FieldCashOnDelivery, raw.CashOnDelivery, &resolved.CashOnDelivery},
		{catalog.FieldPrealert, raw.Prealert, &resolved.Prealert},
		{catalog.FieldReturn, raw.Return, &resolved.Return},
		{catalog.FieldInsurance, raw.Insurance, &resolved.Insurance},
	}
	for _, f := range fields {
		value, err := h.catalog.ResolveField(serviceCode, f.name, f.candidate)
		if err != nil {
			return expedition.Options{}, err
		}
		*f.target = value
	}

	if resolved.CashOnDelivery != "" && resolved.CashOnDelivery != "N" && resolved.CashAmount == "" {
		resolved.CashAmount = order.Total
	}

	return resolved, nil
}

func (h *GenerateLabelCommandHandler) parcels(order ports.Order, raw LabelOptions) int {
	if raw.Parcels > 0 {
		return raw.Parcels
	}
	if order.Parcels > 0 {
		return order.Parcels
	}
	return h.catalog.Defaults().Parcels
}

// persist stores the expedition, replacing a previously generated one for the
// same order reference.
func (h *GenerateLabelCommandHandler) persist(
	ctx context.Context,
	aggregate *expedition.Expedition,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ExpeditionRepository()

	_, err := repo.GetByOrderRef(ctx, aggregate.OrderRef())
	switch {
	case err == nil:
		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if err = repo.Add(ctx, aggregate); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}

func (h *GenerateLabelCommandHandler) fail(orderID string, err error) (LabelResult, error) {
	return LabelResult{OrderID: orderID, Err: err}, err
}

// labelServiceName picks the short print name for the label; services without
// one fall back to the full display name.
func labelServiceName(def catalog.ServiceDefinition) string {
	if def.LabelName != "" {
		return def.LabelName
	}
	return def.Name
}

// concat joins two slices into a fresh one. The same options struct is shared
// across batch workers, so the originals must never be appended to in place.
func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
