package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"shiplabel/internal/adapters/out/postgres"
	"shiplabel/internal/adapters/out/raster"
	"shiplabel/internal/adapters/out/routing"
	"shiplabel/internal/adapters/out/sequence"
	"shiplabel/internal/adapters/out/storefront"
	"shiplabel/internal/adapters/out/tracking"
	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/application/usecases/queries"
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/bus"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	catalog   *catalog.Catalog
	renderer  *services.LabelRenderer
	orders    ports.OrderProvider
	tracker   ports.TrackingProvider
	encoder   ports.RasterEncoder
	routes    ports.RouteResolver
	sequences ports.SequenceSource

	carrierCfg commands.CarrierConfig
	eventBus   *bus.RecordingBus
	workers    int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	carrierCfg, err := buildCarrierConfig(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	encoder, err := raster.NewClient(config.RasterServiceURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("raster client: %w", err)
	}

	orders, err := storefront.NewClient(config.StorefrontURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("storefront client: %w", err)
	}

	tracker, err := tracking.NewClient(config.TrackingURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("tracking client: %w", err)
	}

	workers, _ := strconv.Atoi(config.BatchWorkers)

	eventLogger := logger.With("component", "event_bus")
	eventBus := bus.NewRecordingBus(func(ctx context.Context, event any) {
		eventLogger.InfoContext(ctx, "Domain event published", "event", fmt.Sprintf("%+v", event))
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog.NewCatalog(),
		renderer:   services.NewLabelRenderer(),
		orders:     orders,
		tracker:    tracker,
		encoder:    encoder,
		routes:     routing.NewStaticResolver(),
		sequences:  sequence.NewCounter(),
		carrierCfg: carrierCfg,
		eventBus:   eventBus,
		workers:    workers,
	}, nil
}

func (c *CompositionRoot) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) EventBus() *bus.RecordingBus {
	return c.eventBus
}

func (c *CompositionRoot) CreateGenerateLabelCommandHandler() commands.GenerateLabelCommandHandler {
	return commands.NewGenerateLabelCommandHandler(
		c.expeditionUoWFactory(),
		c.orders,
		c.catalog,
		c.sequences,
		c.routes,
		c.encoder,
		c.renderer,
		c.carrierCfg,
		c.eventBus.Publish,
	)
}

func (c *CompositionRoot) CreateGenerateLabelsCommandHandler() commands.GenerateLabelsCommandHandler {
	return commands.NewGenerateLabelsCommandHandler(c.CreateGenerateLabelCommandHandler(), c.workers)
}

func (c *CompositionRoot) CreateRepeatLabelCommandHandler() commands.RepeatLabelCommandHandler {
	return commands.NewRepeatLabelCommandHandler(
		c.expeditionUoWFactory(),
		c.encoder,
		c.renderer,
		c.eventBus.Publish,
	)
}

func (c *CompositionRoot) CreateCancelExpeditionCommandHandler() commands.CancelExpeditionCommandHandler {
	return commands.NewCancelExpeditionCommandHandler(c.expeditionUoWFactory(), c.eventBus.Publish)
}

func (c *CompositionRoot) CreateRefreshTrackingCommandHandler() commands.RefreshTrackingCommandHandler {
	return commands.NewRefreshTrackingCommandHandler(
		c.expeditionUoWFactory(),
		c.tracker,
		c.eventBus.Publish,
	)
}

func (c *CompositionRoot) CreateGetExpeditionsQueryHandler() queries.GetExpeditionsQueryHandler {
	return queries.NewGetExpeditionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpeditionQueryHandler() queries.GetExpeditionQueryHandler {
	return queries.NewGetExpeditionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) expeditionUoWFactory() commands.ExpeditionUoWFactory {
	return FuncExpeditionUoWFactory(func() commands.ExpeditionUoW {
		return c.uowFactory.Create()
	})
}

func buildCarrierConfig(config Config) (commands.CarrierConfig, error) {
	agency, err := kernel.NewAgency(config.CarrierAgency)
	if err != nil {
		return commands.CarrierConfig{}, fmt.Errorf("carrier agency: %w", err)
	}

	department, err := kernel.NewDepartment(config.CarrierDepartment)
	if err != nil {
		return commands.CarrierConfig{}, fmt.Errorf("carrier department: %w", err)
	}

	return commands.CarrierConfig{Agency: agency, Department: department}, nil
}

type FuncExpeditionUoWFactory func() commands.ExpeditionUoW

func (f FuncExpeditionUoWFactory) Create() commands.ExpeditionUoW {
	return f()
}
