package services

import (
	"fmt"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderPlacementPolicy decides whether a dish can be part of a new order.
//
// Business rules, checked in this order:
//   - the dish is on the menu of the order's restaurant
//   - the dish is active
//
// Both are checked only when the order is placed. Deactivating a dish later
// does not affect orders already placed.
type OrderPlacementPolicy struct{}

func NewOrderPlacementPolicy() OrderPlacementPolicy {
	return OrderPlacementPolicy{}
}

// CheckDish returns order.ErrDishNotFromRestaurant or order.ErrDishNotActive
// for the first rule d breaks.
func (p OrderPlacementPolicy) CheckDish(restaurantID kernel.UUID, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.BelongsTo(restaurantID) {
		return fmt.Errorf("%w: dish %s", order.ErrDishNotFromRestaurant, d.ID())
	}
	if !d.IsActive() {
		return fmt.Errorf("%w: dish %s", order.ErrDishNotActive, d.ID())
	}
	return nil
}
