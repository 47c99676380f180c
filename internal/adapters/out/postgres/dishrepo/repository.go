package dishrepo

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDishRepository accepts a nil tracker for reads outside a unit of work.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrap(err, "failed to insert dish")
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update writes every mutable column explicitly so a false active flag is
// not skipped as a zero value.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":        dto.Name,
		"price":       dto.Price,
		"description": dto.Description,
		"image_url":   dto.ImageURL,
		"category":    dto.Category,
		"active":      dto.Active,
	})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update dish")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", dish.ErrDishNotFound, aggregate.ID())
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", dish.ErrDishNotFound, id)
		}
		return nil, errors.Wrap(err, "failed to find dish by id")
	}

	return toDomain(dto)
}

func (r *GormDishRepository) ListActiveByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	category string,
	page kernel.Page,
) (kernel.PageResult[*dish.Dish], error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("restaurant_id = ? AND active = ?", restaurantID.Bytes(), true)
		if category != "" {
			db = db.Where("LOWER(category) = LOWER(?)", category)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DishDTO{}).Scopes(scope).Count(&total).Error; err != nil {
		return kernel.PageResult[*dish.Dish]{}, errors.Wrap(err, "failed to count dishes")
	}

	var dtos []DishDTO
	err := r.db.WithContext(ctx).Scopes(scope).
		Order("name ASC").Order("id ASC").
		Offset(page.Offset()).Limit(page.Size()).
		Find(&dtos).Error
	if err != nil {
		return kernel.PageResult[*dish.Dish]{}, errors.Wrap(err, "failed to list dishes")
	}

	items := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return kernel.PageResult[*dish.Dish]{}, mapErr
		}
		items = append(items, aggregate)
	}

	return kernel.NewPageResult(items, page, total), nil
}
