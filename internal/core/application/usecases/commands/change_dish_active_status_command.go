package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrChangeDishActiveStatusCommandIsNotConstructed = errors.New(
	"ChangeDishActiveStatusCommand must be created via NewChangeDishActiveStatusCommand constructor",
)

// ChangeDishActiveStatusCommand enables or disables a dish for new orders.
type ChangeDishActiveStatusCommand struct {
	dishID      kernel.UUID
	requesterID kernel.UUID
	active      bool

	guard guard.ConstructorGuard
}

func NewChangeDishActiveStatusCommand(
	dishID, requesterID kernel.UUID,
	active *bool,
) (ChangeDishActiveStatusCommand, error) {
	if active == nil {
		return ChangeDishActiveStatusCommand{}, dish.ErrActiveFlagIsRequired
	}
	if err := errors.Join(dishID.Validate(), requesterID.Validate()); err != nil {
		return ChangeDishActiveStatusCommand{}, err
	}

	return ChangeDishActiveStatusCommand{
		dishID:      dishID,
		requesterID: requesterID,
		active:      *active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDishActiveStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDishActiveStatusCommandIsNotConstructed)
}

func (c ChangeDishActiveStatusCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c ChangeDishActiveStatusCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c ChangeDishActiveStatusCommand) Active() bool {
	return c.active
}
