package outboxrepo

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ ports.TraceabilityOutbox = (*GormOutboxRepository)(nil)

// GormOutboxRepository implements ports.TraceabilityOutbox on the
// traceability_outbox table. It runs outside any unit of work.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Save(ctx context.Context, record traceability.Record, cause error) error {
	dto := OutboxDTO{
		ID:      kernel.NewUUID().Bytes(),
		OrderID: record.OrderID.Bytes(),
		Record:  record,
	}
	if cause != nil {
		dto.LastError = cause.Error()
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrap(err, "failed to store traceability record in outbox")
	}
	return nil
}

// Pending returns the oldest entries first so an order's records replay in
// the order they happened.
func (r *GormOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxEntry, error) {
	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read outbox")
	}

	entries := make([]ports.OutboxEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toEntry(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *GormOutboxRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&OutboxDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errors.Wrap(err, "failed to delete outbox entry")
	}
	return nil
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}

	err := r.db.WithContext(ctx).Model(&OutboxDTO{}).Where("id = ?", id.Bytes()).Updates(map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	}).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark outbox entry as failed")
	}
	return nil
}
