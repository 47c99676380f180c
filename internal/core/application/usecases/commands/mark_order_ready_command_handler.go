package commands

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves IN_PREPARATION orders to READY, issues
// the security PIN and notifies the client.
//
// The notification is sent after the commit. Its failure is logged and never
// reverts the transition.
type MarkOrderReadyCommandHandler struct {
	uowFactory    OrderUoWFactory
	employees     ports.EmployeeDirectory
	clients       ports.ClientDirectory
	notifier      ports.Notifier
	pins          services.PinGenerator
	emitter       TraceabilityEmitter
	notifyTimeout time.Duration
	logger        *slog.Logger
}

func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	employees ports.EmployeeDirectory,
	clients ports.ClientDirectory,
	notifier ports.Notifier,
	pins services.PinGenerator,
	emitter TraceabilityEmitter,
	notifyTimeout time.Duration,
	logger *slog.Logger,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory:    uowFactory,
		employees:     employees,
		clients:       clients,
		notifier:      notifier,
		pins:          pins,
		emitter:       emitter,
		notifyTimeout: notifyTimeout,
		logger:        logger.With("component", "mark_order_ready"),
	}
}

func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
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

	pin, err := h.pins.Generate()
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.MarkReady(cmd.EmployeeID(), pin, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	restaurantName := ""
	if r, lookupErr := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID()); lookupErr == nil {
		restaurantName = r.Name()
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emitter.Emit(ctx, aggregate, previous)
	h.notify(ctx, aggregate, pin, restaurantName)
	return aggregate, nil
}

func (h MarkOrderReadyCommandHandler) notify(ctx context.Context, o *order.Order, pin, restaurantName string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.notifyTimeout)
	defer cancel()

	phone, err := h.clients.PhoneOf(ctx, o.ClientID())
	if err == nil {
		err = h.notifier.NotifyOrderReady(ctx, ports.OrderReadyNotification{
			Phone:          phone,
			OrderID:        o.ID(),
			Pin:            pin,
			RestaurantName: restaurantName,
		})
	}

	if err != nil {
		h.logger.WarnContext(ctx, "order ready notification failed",
			"order_id", o.ID().String(),
			"client_id", o.ClientID().String(),
			"error", err,
		)
	}
}
