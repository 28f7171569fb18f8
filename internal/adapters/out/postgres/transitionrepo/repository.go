package transitionrepo

import (
	"context"

	"storefront/internal/core/domain/model/item"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransitionRepository implements TransitionRepository using GORM.
type GormTransitionRepository struct {
	db *gorm.DB
}

// NewGormTransitionRepository creates a new GORM transition repository.
func NewGormTransitionRepository(db *gorm.DB) *GormTransitionRepository {
	return &GormTransitionRepository{db: db}
}

// GetAll retrieves every configured edge of the unit state machine.
func (r *GormTransitionRepository) GetAll(ctx context.Context) ([]item.Transition, error) {
	var dtos []TransitionDTO
	if err := r.db.WithContext(ctx).Order("from_state, to_state").Find(&dtos).Error; err != nil {
		return nil, err
	}

	transitions := make([]item.Transition, 0, len(dtos))
	for _, dto := range dtos {
		transition, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, transition)
	}

	return transitions, nil
}

// Add inserts one edge, ignoring duplicates so seeding is idempotent.
func (r *GormTransitionRepository) Add(ctx context.Context, transition item.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transition)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
