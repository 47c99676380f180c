package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/dish"
)

type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle loads the dish, checks that the requester owns its restaurant and
// updates price and description only.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishRepo := uow.DishRepository()
	aggregate, err := dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	owner, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = owner.EnsureOwnedBy(cmd.RequesterID()); err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(cmd.Price(), cmd.Description()); err != nil {
		return nil, err
	}

	if err = dishRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
