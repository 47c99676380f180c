package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/dish"
)

type ChangeDishActiveStatusCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewChangeDishActiveStatusCommandHandler(uowFactory DishUoWFactory) ChangeDishActiveStatusCommandHandler {
	return ChangeDishActiveStatusCommandHandler{uowFactory: uowFactory}
}

// Handle flips the active flag after the ownership check. Orders placed
// earlier keep the dish.
func (h ChangeDishActiveStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDishActiveStatusCommand,
) (*dish.Dish, error) {
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

	aggregate.SetActive(cmd.Active())

	if err = dishRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
