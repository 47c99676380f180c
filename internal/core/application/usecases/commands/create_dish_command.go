package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand adds a dish to the menu of a restaurant on behalf of its owner.
// The dish is always created active.
type CreateDishCommand struct {
	restaurantID kernel.UUID
	requesterID  kernel.UUID
	name         string
	price        int
	description  string
	imageURL     string
	category     string

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(
	restaurantID, requesterID kernel.UUID,
	name string,
	price int,
	description, imageURL, category string,
) (CreateDishCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		restaurantID: restaurantID,
		requesterID:  requesterID,
		name:         name,
		price:        price,
		description:  description,
		imageURL:     imageURL,
		category:     category,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateDishCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateDishCommand) Name() string {
	return c.name
}

func (c CreateDishCommand) Price() int {
	return c.price
}

func (c CreateDishCommand) Description() string {
	return c.description
}

func (c CreateDishCommand) ImageURL() string {
	return c.imageURL
}

func (c CreateDishCommand) Category() string {
	return c.category
}
