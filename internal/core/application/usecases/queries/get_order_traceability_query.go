package queries

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderTraceabilityQueryIsNotConstructed = errors.New(
	"GetOrderTraceabilityQuery must be created via NewGetOrderTraceabilityQuery constructor",
)

// GetOrderTraceabilityQuery returns the status history of one of the client's orders.
type GetOrderTraceabilityQuery struct {
	orderID  kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTraceabilityQuery(orderID, clientID kernel.UUID) (GetOrderTraceabilityQuery, error) {
	if err := errors.Join(orderID.Validate(), clientID.Validate()); err != nil {
		return GetOrderTraceabilityQuery{}, err
	}
	return GetOrderTraceabilityQuery{orderID: orderID, clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTraceabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTraceabilityQueryIsNotConstructed)
}

func (q GetOrderTraceabilityQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderTraceabilityQuery) ClientID() kernel.UUID {
	return q.clientID
}

type GetOrderTraceabilityQueryHandler struct {
	orders ports.OrderRepository
	store  ports.TraceabilityStore
}

func NewGetOrderTraceabilityQueryHandler(
	orders ports.OrderRepository,
	store ports.TraceabilityStore,
) GetOrderTraceabilityQueryHandler {
	return GetOrderTraceabilityQueryHandler{orders: orders, store: store}
}

// Handle fails with order.ErrOrderNotFound or order.ErrOrderNotFromClient
// before the store is asked.
func (h GetOrderTraceabilityQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTraceabilityQuery,
) ([]traceability.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = o.EnsurePlacedBy(query.ClientID()); err != nil {
		return nil, err
	}

	return h.store.GetByOrder(ctx, o.ID())
}
