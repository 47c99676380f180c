package commands

import (
	"context"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders.
//
// Everything runs in one transaction: the restaurant lookup, the active order
// check, the per-line dish checks and the insert. The repository backs the
// active order check with a unique constraint, so two concurrent placements
// for the same client cannot both succeed.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPlacementPolicy
	emitter    TraceabilityEmitter
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderPlacementPolicy,
	emitter TraceabilityEmitter,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		emitter:    emitter,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	hasActive, err := orderRepo.ExistsActiveForClient(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, fmt.Errorf("%w: client %s", order.ErrClientHasActiveOrder, cmd.ClientID())
	}

	items, err := h.validateLines(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.ClientID(), cmd.RestaurantID(), items, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emitter.Emit(ctx, aggregate, order.Unknown)
	return aggregate, nil
}

// validateLines stops at the first invalid line; later dishes are not looked up.
func (h CreateOrderCommandHandler) validateLines(
	ctx context.Context,
	uow DishRepoFactory,
	cmd CreateOrderCommand,
) ([]order.Item, error) {
	dishRepo := uow.DishRepository()
	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))

	for _, line := range lines {
		item, err := order.NewItem(line.DishID, line.Quantity)
		if err != nil {
			return nil, err
		}

		d, err := dishRepo.Get(ctx, line.DishID)
		if err != nil {
			return nil, err
		}

		if err = h.policy.CheckDish(cmd.RestaurantID(), d); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
