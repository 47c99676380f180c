// Package ports defines the contracts between the food court core and its
// infrastructure: persistence, sibling services and messaging.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"
)

// RestaurantRepository persists restaurant aggregates.
type RestaurantRepository interface {
	// Add inserts a new restaurant. A NIT collision fails with restaurant.ErrDuplicateNit.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get fails with restaurant.ErrRestaurantNotFound when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	ExistsByNit(ctx context.Context, nit string) (bool, error)

	// List returns restaurants ordered by name.
	List(ctx context.Context, page kernel.Page) (kernel.PageResult[*restaurant.Restaurant], error)
}

// DishRepository persists dish aggregates.
type DishRepository interface {
	Add(ctx context.Context, aggregate *dish.Dish) error

	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get fails with dish.ErrDishNotFound when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// ListActiveByRestaurant returns active dishes of a restaurant ordered by
	// name. A non-empty category filters case-insensitively.
	ListActiveByRestaurant(
		ctx context.Context,
		restaurantID kernel.UUID,
		category string,
		page kernel.Page,
	) (kernel.PageResult[*dish.Dish], error)
}

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add inserts a new order. A second active order of the same client fails
	// with order.ErrClientHasActiveOrder.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes a transition. It fails with errs.ErrVersionIsInvalid when
	// the order changed since it was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get fails with order.ErrOrderNotFound when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsActiveForClient reports whether clientID has an order in an active status.
	ExistsActiveForClient(ctx context.Context, clientID kernel.UUID) (bool, error)

	// ListByRestaurantAndStatus returns orders oldest first.
	ListByRestaurantAndStatus(
		ctx context.Context,
		restaurantID kernel.UUID,
		status order.Status,
		page kernel.Page,
	) (kernel.PageResult[*order.Order], error)
}
