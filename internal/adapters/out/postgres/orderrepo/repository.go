package orderrepo

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository accepts a nil tracker for reads outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its items. The partial unique index on active
// orders turns a concurrent second order of the same client into
// order.ErrClientHasActiveOrder.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: client %s", order.ErrClientHasActiveOrder, aggregate.ClientID())
		}
		return errors.Wrap(err, "failed to insert order")
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update writes the transition fields when the stored version still matches
// the loaded one, and bumps the version. Items never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"employee_id": dto.EmployeeID,
			"status":      dto.Status,
			"pin":         dto.Pin,
			"updated_at":  dto.UpdatedAt,
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: client %s", order.ErrClientHasActiveOrder, aggregate.ClientID())
		}
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return fmt.Errorf("%w: %s", order.ErrOrderNotFound, aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("order",
			fmt.Errorf("order %s changed after version %d was read", aggregate.ID(), dto.Version))
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", order.ErrOrderNotFound, id)
		}
		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ExistsActiveForClient(ctx context.Context, clientID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("client_id = ? AND status IN ?", clientID.Bytes(), ActiveStatusCodes()).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count active orders")
	}
	return count > 0, nil
}

func (r *GormOrderRepository) ListByRestaurantAndStatus(
	ctx context.Context,
	restaurantID kernel.UUID,
	status order.Status,
	page kernel.Page,
) (kernel.PageResult[*order.Order], error) {
	filter := "restaurant_id = ? AND status = ?"

	var total int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where(filter, restaurantID.Bytes(), int(status)).
		Count(&total).Error
	if err != nil {
		return kernel.PageResult[*order.Order]{}, errors.Wrap(err, "failed to count orders")
	}

	var dtos []OrderDTO
	err = r.withItems(ctx).
		Where(filter, restaurantID.Bytes(), int(status)).
		Order("created_at ASC").Order("id ASC").
		Offset(page.Offset()).Limit(page.Size()).
		Find(&dtos).Error
	if err != nil {
		return kernel.PageResult[*order.Order]{}, errors.Wrap(err, "failed to list orders")
	}

	items := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return kernel.PageResult[*order.Order]{}, mapErr
		}
		items = append(items, o)
	}

	return kernel.NewPageResult(items, page, total), nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}
