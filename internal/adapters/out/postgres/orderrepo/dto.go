// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and creation time.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null"`
	LocationID     uuid.UUID       `gorm:"type:uuid;not null"`
	Status         int             `gorm:"type:int;not null;index"`
	PaymentStatus  int             `gorm:"type:int;not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Shipping       ShippingDTO     `gorm:"embedded;embeddedPrefix:shipping_"`
	ServiceOrder   bool            `gorm:"not null"`
	RelatedOrderID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingDTO represents the embedded shipping snapshot within the order table.
// All-empty columns mean a pickup order.
type ShippingDTO struct {
	Address       string          `gorm:"type:text"`
	ReceiverName  string          `gorm:"type:varchar(255)"`
	ReceiverPhone string          `gorm:"type:varchar(64)"`
	ReceiverEmail string          `gorm:"type:varchar(255)"`
	Fee           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// StatusHistoryDTO represents one audit row of an order's fulfilment path.
// History rows are append only and never updated.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:int;not null"`
	ToStatus   int       `gorm:"type:int;not null"`
	ChangedAt  time.Time `gorm:"not null;index"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorClass int       `gorm:"type:int;not null"`
	Note       string    `gorm:"type:text"`
}

// TableName specifies the database table name for order history rows.
// Overrides GORM's default naming convention to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional related service order link.
func fromDomain(aggregate *order.Order) OrderDTO {
	var relatedOrderID *uuid.UUID
	if id := aggregate.RelatedOrderID(); id != nil {
		raw := id.Bytes()
		relatedOrderID = &raw
	}

	shipping := aggregate.Shipping()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CompanyID:     aggregate.CompanyID().Bytes(),
		LocationID:    aggregate.LocationID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		TotalAmount:   aggregate.TotalAmount().Decimal(),
		Shipping: ShippingDTO{
			Address:       shipping.Address,
			ReceiverName:  shipping.ReceiverName,
			ReceiverPhone: shipping.ReceiverPhone,
			ReceiverEmail: shipping.ReceiverEmail,
			Fee:           shipping.Fee.Decimal(),
		},
		ServiceOrder:   aggregate.IsServiceOrder(),
		RelatedOrderID: relatedOrderID,
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both status machines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
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

	var relatedOrderID *kernel.UUID
	if dto.RelatedOrderID != nil {
		rID, relatedErr := kernel.UUIDFromBytes((*dto.RelatedOrderID)[:])
		if relatedErr != nil {
			return nil, relatedErr
		}
		relatedOrderID = &rID
	}

	shipping := order.Shipping{
		Address:       dto.Shipping.Address,
		ReceiverName:  dto.Shipping.ReceiverName,
		ReceiverPhone: dto.Shipping.ReceiverPhone,
		ReceiverEmail: dto.Shipping.ReceiverEmail,
		Fee:           kernel.NewMoney(dto.Shipping.Fee),
	}

	return order.RestoreOrder(
		id,
		customerID,
		companyID,
		locationID,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		kernel.NewMoney(dto.TotalAmount),
		shipping,
		dto.ServiceOrder,
		relatedOrderID,
		dto.CreatedAt,
	)
}

// historyFromDomain converts an audit row to its database representation.
func historyFromDomain(history order.StatusHistory) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:         history.ID().Bytes(),
		OrderID:    history.OrderID().Bytes(),
		FromStatus: int(history.From()),
		ToStatus:   int(history.To()),
		ChangedAt:  history.ChangedAt(),
		ActorID:    history.Actor().ID().Bytes(),
		ActorClass: int(history.Actor().Class()),
		Note:       history.Note(),
	}
}
