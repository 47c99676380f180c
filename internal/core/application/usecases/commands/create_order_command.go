package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a requested item as received from the client. Quantities are
// validated by the handler, one line at a time.
type OrderLine struct {
	DishID   kernel.UUID
	Quantity int
}

// CreateOrderCommand places a client order at one restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, restaurantID, []OrderLine{{DishID: dishID, Quantity: 2}})
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	clientID     kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand rejects an empty line list before anything else.
func NewCreateOrderCommand(clientID, restaurantID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	if len(lines) == 0 {
		return CreateOrderCommand{}, order.ErrEmptyOrder
	}
	if err := errors.Join(clientID.Validate(), restaurantID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		clientID:     clientID,
		restaurantID: restaurantID,
		lines:        append([]OrderLine(nil), lines...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}
