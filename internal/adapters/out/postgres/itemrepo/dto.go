// Package itemrepo provides data transfer objects and mapping functions for inventory unit persistence.
// This package implements the repository pattern for the item domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"time"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting inventory units.
// Maps item domain aggregates to relational database tables with indexes
// on the owning order and the lifecycle state for reservation queries.
type ItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null"`
	LocationID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ControlNumber string          `gorm:"type:varchar(255);not null"`
	State         string          `gorm:"type:varchar(32);not null;index"`
	OrderID       *uuid.UUID      `gorm:"type:uuid;index"`
	UnitCost      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RetailPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ServicePrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WarrantyType  string          `gorm:"type:varchar(32);not null"`
	WarrantyDays  int             `gorm:"type:int;not null"`
	Version       int64           `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for inventory unit entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// StateHistoryDTO represents one audit row of a unit's lifecycle.
// History rows are append only and never updated.
type StateHistoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FromState   string    `gorm:"type:varchar(32);not null"`
	ToState     string    `gorm:"type:varchar(32);not null"`
	Description string    `gorm:"type:varchar(255)"`
	ChangedAt   time.Time `gorm:"not null;index"`
	ActorID     uuid.UUID `gorm:"type:uuid;not null"`
	ActorClass  int       `gorm:"type:int;not null"`
	Note        string    `gorm:"type:text"`
}

// TableName specifies the database table name for unit history rows.
// Overrides GORM's default naming convention to use "item_state_history".
func (StateHistoryDTO) TableName() string {
	return "item_state_history"
}

// fromDomain converts an item domain aggregate to its database representation.
// Maps all unit attributes including the optional owning order.
func fromDomain(unit *item.Item) ItemDTO {
	var orderID *uuid.UUID
	if id := unit.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return ItemDTO{
		ID:            unit.ID().Bytes(),
		ProductID:     unit.ProductID().Bytes(),
		CompanyID:     unit.CompanyID().Bytes(),
		LocationID:    unit.LocationID().Bytes(),
		ControlNumber: unit.ControlNumber(),
		State:         string(unit.State()),
		OrderID:       orderID,
		UnitCost:      unit.UnitCost().Decimal(),
		RetailPrice:   unit.RetailPrice().Decimal(),
		UnitPrice:     unit.UnitPrice().Decimal(),
		ServicePrice:  unit.ServicePrice().Decimal(),
		WarrantyType:  string(unit.WarrantyType()),
		WarrantyDays:  unit.WarrantyDays(),
		Version:       unit.Version(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the complete aggregate including state and ownership using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return item.RestoreItem(
		id,
		productID,
		companyID,
		locationID,
		dto.ControlNumber,
		item.State(dto.State),
		orderID,
		kernel.NewMoney(dto.UnitCost),
		kernel.NewMoney(dto.RetailPrice),
		kernel.NewMoney(dto.UnitPrice),
		kernel.NewMoney(dto.ServicePrice),
		item.WarrantyType(dto.WarrantyType),
		dto.WarrantyDays,
		dto.Version,
	)
}

// historyFromDomain converts an audit row to its database representation.
func historyFromDomain(history item.StateHistory) StateHistoryDTO {
	return StateHistoryDTO{
		ID:          history.ID().Bytes(),
		ItemID:      history.ItemID().Bytes(),
		FromState:   string(history.Transition().From()),
		ToState:     string(history.Transition().To()),
		Description: history.Transition().Description(),
		ChangedAt:   history.ChangedAt(),
		ActorID:     history.Actor().ID().Bytes(),
		ActorClass:  int(history.Actor().Class()),
		Note:        history.Note(),
	}
}
