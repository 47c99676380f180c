package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// DeliverOrderCommandHandler confirms the hand-off of READY orders. A wrong
// PIN is rejected before anything is written, so the order stays READY.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	employees  ports.EmployeeDirectory
	emitter    TraceabilityEmitter
}

func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	employees ports.EmployeeDirectory,
	emitter TraceabilityEmitter,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		employees:  employees,
		emitter:    emitter,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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
	if err = aggregate.Deliver(cmd.EmployeeID(), cmd.Pin(), time.Now().UTC()); err != nil {
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
