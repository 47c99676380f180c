// Package dishrepo persists dish aggregates in the dishes table.
package dishrepo

import (
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null"`
	Price        int       `gorm:"not null"`
	Description  string
	ImageURL     string
	Category     string `gorm:"not null;index"`
	Active       bool   `gorm:"not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:           d.ID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		Name:         d.Name(),
		Price:        d.Price(),
		Description:  d.Description(),
		ImageURL:     d.ImageURL(),
		Category:     d.Category(),
		Active:       d.IsActive(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(id, restaurantID, dto.Name, dto.Price, dto.Description, dto.ImageURL, dto.Category,
		dto.Active)
}
