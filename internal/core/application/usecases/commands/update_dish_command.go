package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand changes the price and description of a dish. A nil price
// is rejected like a non-positive one.
type UpdateDishCommand struct {
	dishID      kernel.UUID
	requesterID kernel.UUID
	price       int
	description string

	guard guard.ConstructorGuard
}

func NewUpdateDishCommand(
	dishID, requesterID kernel.UUID,
	price *int,
	description string,
) (UpdateDishCommand, error) {
	if price == nil {
		return UpdateDishCommand{}, dish.ErrInvalidPrice
	}
	if err := dish.ValidatePrice(*price); err != nil {
		return UpdateDishCommand{}, err
	}
	if err := errors.Join(dishID.Validate(), requesterID.Validate()); err != nil {
		return UpdateDishCommand{}, err
	}

	return UpdateDishCommand{
		dishID:      dishID,
		requesterID: requesterID,
		price:       *price,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c UpdateDishCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c UpdateDishCommand) Price() int {
	return c.price
}

func (c UpdateDishCommand) Description() string {
	return c.description
}
