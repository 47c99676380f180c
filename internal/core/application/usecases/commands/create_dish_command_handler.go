package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
)

// CreateDishCommandHandler adds dishes to a menu. The price is validated
// before the restaurant is looked up and ownership is checked.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := dish.NewDish(
		kernel.NewUUID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
		cmd.ImageURL(),
		cmd.Category(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = owner.EnsureOwnedBy(cmd.RequesterID()); err != nil {
		return nil, err
	}

	if err = uow.DishRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
