package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// AssignOrderCommandHandler moves PENDING orders to IN_PREPARATION.
//
// Checks, in order: the employee works at a restaurant, the order exists, the
// order belongs to that restaurant, the order is PENDING. The version check of
// the repository makes a concurrent second assignment fail.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	employees  ports.EmployeeDirectory
	emitter    TraceabilityEmitter
}

func NewAssignOrderCommandHandler(
	uowFactory OrderUoWFactory,
	employees ports.EmployeeDirectory,
	emitter TraceabilityEmitter,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		employees:  employees,
		emitter:    emitter,
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	restaurantID, err := h.employees.RestaurantOf(ctx, cmd.EmployeeID())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.EnsureFromRestaurant(restaurantID); err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.Assign(cmd.EmployeeID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emitter.Emit(ctx, aggregate, previous)
	return aggregate, nil
}
