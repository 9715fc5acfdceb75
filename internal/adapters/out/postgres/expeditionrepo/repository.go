package expeditionrepo

import (
	"context"
	"errors"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExpeditionRepository implements ExpeditionRepository using GORM.
type GormExpeditionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(orderRef string, aggregate any)
}

// NewGormExpeditionRepository creates a new GORM expedition repository.
func NewGormExpeditionRepository(db *gorm.DB, tracker aggregateTracker) *GormExpeditionRepository {
	return &GormExpeditionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new expedition to the database.
func (r *GormExpeditionRepository) Add(ctx context.Context, aggregate *expedition.Expedition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderRef(), aggregate)
	return nil
}

// Update saves an existing expedition to the database, keyed by its order
// reference. The stored surrogate id is preserved.
func (r *GormExpeditionRepository) Update(ctx context.Context, aggregate *expedition.Expedition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ExpeditionDTO{}).
		Where("order_ref = ?", dto.OrderRef).
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderRef(), aggregate)
	return nil
}

// GetByOrderRef retrieves the expedition generated for an order.
func (r *GormExpeditionRepository) GetByOrderRef(ctx context.Context, orderRef string) (*expedition.Expedition, error) {
	if orderRef == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}

	var dto ExpeditionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_ref = ?", orderRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderRef", orderRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an expedition by its carrier shipment code.
func (r *GormExpeditionRepository) GetByCode(ctx context.Context, code kernel.ExpeditionCode) (*expedition.Expedition, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ExpeditionDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every expedition in a non-terminal status, ordered
// by creation time.
func (r *GormExpeditionRepository) GetAllActive(ctx context.Context) ([]*expedition.Expedition, error) {
	var dtos []ExpeditionDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(expedition.Delivered), int(expedition.Cancelled)}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	expeditions := make([]*expedition.Expedition, 0, len(dtos))
	for _, dto := range dtos {
		e, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		expeditions = append(expeditions, e)
	}

	return expeditions, nil
}
