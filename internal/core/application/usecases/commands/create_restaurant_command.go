package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant for an owner. Field rules are
// enforced by the handler in their fixed order.
type CreateRestaurantCommand struct {
	name    string
	nit     string
	address string
	phone   string
	logoURL string
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	name, nit, address, phone, logoURL string,
	ownerID kernel.UUID,
) CreateRestaurantCommand {
	return CreateRestaurantCommand{
		name:    name,
		nit:     nit,
		address: address,
		phone:   phone,
		logoURL: logoURL,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Nit() string {
	return c.nit
}

func (c CreateRestaurantCommand) Address() string {
	return c.address
}

func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

func (c CreateRestaurantCommand) LogoURL() string {
	return c.logoURL
}

func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}
