package commands

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"
)

// TraceabilityEmitter records an order transition after it was committed.
// Emission never fails the transition.
type TraceabilityEmitter interface {
	Emit(ctx context.Context, o *order.Order, previous order.Status)
}

// StoreTraceabilityEmitter builds the record from the order, the dishes it
// references and the contact data of its client and employee, then appends it
// to the traceability store. Lookups that fail leave their fields empty.
type StoreTraceabilityEmitter struct {
	store     ports.TraceabilityStore
	dishes    ports.DishRepository
	clients   ports.ClientDirectory
	employees ports.EmployeeDirectory
	timeout   time.Duration
	logger    *slog.Logger
}

func NewStoreTraceabilityEmitter(
	store ports.TraceabilityStore,
	dishes ports.DishRepository,
	clients ports.ClientDirectory,
	employees ports.EmployeeDirectory,
	timeout time.Duration,
	logger *slog.Logger,
) *StoreTraceabilityEmitter {
	return &StoreTraceabilityEmitter{
		store:     store,
		dishes:    dishes,
		clients:   clients,
		employees: employees,
		timeout:   timeout,
		logger:    logger.With("component", "traceability_emitter"),
	}
}

func (e *StoreTraceabilityEmitter) Emit(ctx context.Context, o *order.Order, previous order.Status) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	record := traceability.NewRecord(o, previous, e.snapshot(ctx, o))

	if email, err := e.clients.EmailOf(ctx, o.ClientID()); err == nil {
		record.ClientEmail = email
	} else {
		e.logger.DebugContext(ctx, "client email lookup failed", "order_id", o.ID().String(), "error", err)
	}

	if employeeID := o.EmployeeID(); employeeID != nil {
		if email, err := e.employees.EmailOf(ctx, *employeeID); err == nil {
			record.EmployeeEmail = email
		} else {
			e.logger.DebugContext(ctx, "employee email lookup failed", "order_id", o.ID().String(), "error", err)
		}
	}

	if err := e.store.Append(ctx, record); err != nil {
		e.logger.ErrorContext(ctx, "traceability emission failed",
			"order_id", o.ID().String(),
			"previous_status", previous.String(),
			"new_status", o.Status().String(),
			"error", err,
		)
	}
}

func (e *StoreTraceabilityEmitter) snapshot(ctx context.Context, o *order.Order) []traceability.ItemSnapshot {
	items := o.Items()
	snapshots := make([]traceability.ItemSnapshot, 0, len(items))
	for _, item := range items {
		s := traceability.ItemSnapshot{DishID: item.DishID(), Quantity: item.Quantity()}
		if d, err := e.dishes.Get(ctx, item.DishID()); err == nil {
			s.DishName = d.Name()
			s.UnitPrice = d.Price()
		}
		snapshots = append(snapshots, s)
	}
	return snapshots
}
