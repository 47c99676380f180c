package restaurantrepo

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository accepts a nil tracker for reads outside a unit of work.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the restaurant. The unique NIT index backs up the existence
// check of the registering use case.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", restaurant.ErrDuplicateNit, aggregate.Nit())
		}
		return errors.Wrap(err, "failed to insert restaurant")
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", restaurant.ErrRestaurantNotFound, id)
		}
		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toDomain(dto)
}

func (r *GormRestaurantRepository) ExistsByNit(ctx context.Context, nit string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("nit = ?", nit).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count restaurants by nit")
	}
	return count > 0, nil
}

// List pages through restaurants by name, then id so equal names keep a stable order.
func (r *GormRestaurantRepository) List(
	ctx context.Context,
	page kernel.Page,
) (kernel.PageResult[*restaurant.Restaurant], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Count(&total).Error; err != nil {
		return kernel.PageResult[*restaurant.Restaurant]{}, errors.Wrap(err, "failed to count restaurants")
	}

	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Order("name ASC").Order("id ASC").
		Offset(page.Offset()).Limit(page.Size()).
		Find(&dtos).Error
	if err != nil {
		return kernel.PageResult[*restaurant.Restaurant]{}, errors.Wrap(err, "failed to list restaurants")
	}

	items := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return kernel.PageResult[*restaurant.Restaurant]{}, mapErr
		}
		items = append(items, aggregate)
	}

	return kernel.NewPageResult(items, page, total), nil
}
