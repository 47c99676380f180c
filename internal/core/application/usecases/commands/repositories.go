// Package commands contains the operations that change the state of the food court.
// Every command follows the same pattern: a validated value built by its
// constructor, and a handler running validation, the transaction and persistence.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantUoW is used by restaurant registration.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// DishUoW is used by menu maintenance, which checks ownership through the restaurant.
	DishUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
	}

	DishUoWFactory interface {
		Create() DishUoW
	}

	// OrderUoW spans the three aggregates an order is validated against.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   restaurant, err := uow.RestaurantRepository().Get(ctx, restaurantID)
	//   dish, err := uow.DishRepository().Get(ctx, dishID)
	//   err = uow.OrderRepository().Add(ctx, order)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
