// Package restaurantrepo persists restaurant aggregates in the restaurants table.
package restaurantrepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;index"`
	Nit     string    `gorm:"not null;uniqueIndex"`
	Address string
	Phone   string    `gorm:"size:13"`
	LogoURL string
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Bytes(),
		Name:    r.Name(),
		Nit:     r.Nit(),
		Address: r.Address(),
		Phone:   r.Phone(),
		LogoURL: r.LogoURL(),
		OwnerID: r.OwnerID().Bytes(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Nit, dto.Address, dto.Phone, dto.LogoURL, ownerID)
}
