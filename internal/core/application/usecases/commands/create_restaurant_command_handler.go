package commands

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/ports"
)

// CreateRestaurantCommandHandler registers restaurants.
//
// Validation is fail-fast: name, NIT, phone, owner presence, owner existence,
// owner role, NIT uniqueness. The first violation is returned.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	users      ports.UserDirectory
}

func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	users ports.UserDirectory,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := restaurant.NewRestaurant(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Nit(),
		cmd.Address(),
		cmd.Phone(),
		cmd.LogoURL(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.ensureOwner(ctx, cmd.OwnerID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RestaurantRepository()
	exists, err := repo.ExistsByNit(ctx, aggregate.Nit())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", restaurant.ErrDuplicateNit, aggregate.Nit())
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h CreateRestaurantCommandHandler) ensureOwner(ctx context.Context, ownerID kernel.UUID) error {
	exists, err := h.users.Exists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", restaurant.ErrOwnerNotFound, ownerID)
	}

	role, err := h.users.GetRole(ctx, ownerID)
	if err != nil {
		return err
	}
	if kernel.ParseRole(role) != kernel.RoleOwner {
		return fmt.Errorf("%w: %s has role %q", restaurant.ErrUserNotOwnerRole, ownerID, role)
	}

	return nil
}
