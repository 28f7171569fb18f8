// Package ledgerrepo provides data transfer objects and mapping functions for ledger persistence.
// Ledger entries are immutable rows; the package supports appends and reads
// only, matching the append-only contract of the domain model.
package ledgerrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting ledger entries.
// The order index serves the balance folds; related_entry_id links the two
// halves of a credit transfer.
type EntryDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind           int             `gorm:"type:int;not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Method         string          `gorm:"type:varchar(32);not null"`
	RelatedEntryID *uuid.UUID      `gorm:"type:uuid"`
	ActorID        uuid.UUID       `gorm:"type:uuid;not null"`
	ActorClass     int             `gorm:"type:int;not null"`
	Note           string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "ledger_entries".
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) EntryDTO {
	var relatedEntryID *uuid.UUID
	if id := entry.RelatedEntryID(); id != nil {
		raw := id.Bytes()
		relatedEntryID = &raw
	}

	return EntryDTO{
		ID:             entry.ID().Bytes(),
		CustomerID:     entry.CustomerID().Bytes(),
		CompanyID:      entry.CompanyID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		Kind:           int(entry.Kind()),
		Amount:         entry.Amount().Decimal(),
		Method:         string(entry.Method()),
		RelatedEntryID: relatedEntryID,
		ActorID:        entry.Actor().ID().Bytes(),
		ActorClass:     int(entry.Actor().Class()),
		Note:           entry.Note(),
		CreatedAt:      entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*ledger.Entry, error) {
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

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var relatedEntryID *kernel.UUID
	if dto.RelatedEntryID != nil {
		rID, relatedErr := kernel.UUIDFromBytes((*dto.RelatedEntryID)[:])
		if relatedErr != nil {
			return nil, relatedErr
		}
		relatedEntryID = &rID
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	actor, err := kernel.NewActor(actorID, kernel.ActorClass(dto.ActorClass))
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(
		id,
		customerID,
		companyID,
		orderID,
		ledger.Kind(dto.Kind),
		kernel.NewMoney(dto.Amount),
		ledger.PaymentMethod(dto.Method),
		relatedEntryID,
		actor,
		dto.Note,
		dto.CreatedAt,
	)
}
