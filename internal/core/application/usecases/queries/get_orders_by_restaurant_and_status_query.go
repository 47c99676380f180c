package queries

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrdersByRestaurantAndStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByRestaurantAndStatusQuery must be created via NewGetOrdersByRestaurantAndStatusQuery constructor",
)

// GetOrdersByRestaurantAndStatusQuery lists the orders of the employee's
// restaurant in one status.
type GetOrdersByRestaurantAndStatusQuery struct {
	employeeID kernel.UUID
	status     order.Status
	page       kernel.Page

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantAndStatusQuery parses status case-insensitively; an
// unknown name is an input error.
func NewGetOrdersByRestaurantAndStatusQuery(
	employeeID kernel.UUID,
	status string,
	page kernel.Page,
) (GetOrdersByRestaurantAndStatusQuery, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersByRestaurantAndStatusQuery{}, err
	}
	if err = employeeID.Validate(); err != nil {
		return GetOrdersByRestaurantAndStatusQuery{}, err
	}

	return GetOrdersByRestaurantAndStatusQuery{
		employeeID: employeeID,
		status:     parsed,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByRestaurantAndStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantAndStatusQueryIsNotConstructed)
}

func (q GetOrdersByRestaurantAndStatusQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

func (q GetOrdersByRestaurantAndStatusQuery) Status() order.Status {
	return q.status
}

func (q GetOrdersByRestaurantAndStatusQuery) Page() kernel.Page {
	return q.page
}

type GetOrdersByRestaurantAndStatusQueryHandler struct {
	employees ports.EmployeeDirectory
	orders    ports.OrderRepository
	enricher  OrderEnricher
}

func NewGetOrdersByRestaurantAndStatusQueryHandler(
	employees ports.EmployeeDirectory,
	orders ports.OrderRepository,
	enricher OrderEnricher,
) GetOrdersByRestaurantAndStatusQueryHandler {
	return GetOrdersByRestaurantAndStatusQueryHandler{employees: employees, orders: orders, enricher: enricher}
}

func (h GetOrdersByRestaurantAndStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantAndStatusQuery,
) (kernel.PageResult[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return kernel.PageResult[OrderResponse]{}, err
	}

	restaurantID, err := h.employees.RestaurantOf(ctx, query.EmployeeID())
	if err != nil {
		return kernel.PageResult[OrderResponse]{}, err
	}

	result, err := h.orders.ListByRestaurantAndStatus(ctx, restaurantID, query.Status(), query.Page())
	if err != nil {
		return kernel.PageResult[OrderResponse]{}, err
	}

	return kernel.PageResult[OrderResponse]{
		Items:      h.enricher.EnrichAll(ctx, result.Items),
		Page:       result.Page,
		Size:       result.Size,
		TotalItems: result.TotalItems,
	}, nil
}
