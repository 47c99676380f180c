package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"
)

// CancelOrderCommandHandler lets clients cancel their PENDING orders.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	emitter    TraceabilityEmitter
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, emitter TraceabilityEmitter) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.Cancel(cmd.ClientID(), time.Now().UTC()); err != nil {
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
