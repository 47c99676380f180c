// Package outboxrepo keeps traceability records whose append to the remote
// store failed, until the replay job delivers them.
package outboxrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Record    traceability.Record `gorm:"type:jsonb;serializer:json;not null"`
	Attempts  int                 `gorm:"not null;default:0"`
	LastError string
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

func (OutboxDTO) TableName() string {
	return "traceability_outbox"
}

func toEntry(dto OutboxDTO) (ports.OutboxEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxEntry{}, err
	}
	return ports.OutboxEntry{
		ID:        id,
		Record:    dto.Record,
		Attempts:  dto.Attempts,
		LastError: dto.LastError,
	}, nil
}
