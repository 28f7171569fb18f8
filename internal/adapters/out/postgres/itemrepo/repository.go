package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory unit to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing unit, guarded by an optimistic version check.
// The write succeeds only when the stored version still matches the version
// the aggregate was loaded with; a mismatch means another transaction won
// the race and the caller must reload and retry.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("item %s at version %d: %w",
			aggregate.ID(), aggregate.Version(), item.ErrConcurrentModification)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory unit by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves the units whose IDs are in the given set, sorted by ID.
// Units that do not exist are simply absent from the result; the caller
// decides whether a shorter slice is an error.
func (r *GormItemRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByOrder retrieves all units currently owned by the given order.
func (r *GormItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AddHistory appends one audit row for a unit state change.
func (r *GormItemRepository) AddHistory(ctx context.Context, history item.StateHistory) error {
	if err := history.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(history)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func toDomainSlice(dtos []ItemDTO) ([]*item.Item, error) {
	units := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		unit, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	return units, nil
}
