// Package transitionrepo persists the configurable edges of the unit state
// machine. The composition root loads all rows at startup and freezes them
// into the in-memory transition graph; the table is never read per request.
package transitionrepo

import (
	"storefront/internal/core/domain/model/item"
)

// TransitionDTO represents one directed edge of the unit state machine.
type TransitionDTO struct {
	FromState   string `gorm:"type:varchar(32);primaryKey"`
	ToState     string `gorm:"type:varchar(32);primaryKey"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for transition edges.
// Overrides GORM's default naming convention to use "item_transitions".
func (TransitionDTO) TableName() string {
	return "item_transitions"
}

// fromDomain converts a transition edge to its database representation.
func fromDomain(transition item.Transition) TransitionDTO {
	return TransitionDTO{
		FromState:   string(transition.From()),
		ToState:     string(transition.To()),
		Description: transition.Description(),
	}
}

// toDomain converts a database DTO to a transition edge.
func toDomain(dto TransitionDTO) (item.Transition, error) {
	return item.NewTransition(item.State(dto.FromState), item.State(dto.ToState), dto.Description)
}
