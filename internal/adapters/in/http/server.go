package http

import (
	"context"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/traceability"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f HandlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// OrderPresenter joins an order with its restaurant and dish names.
type OrderPresenter interface {
	Enrich(ctx context.Context, o *order.Order) queries.OrderResponse
}

// Handlers lists the use cases exposed over HTTP.
type Handlers struct {
	CreateRestaurant Handler[commands.CreateRestaurantCommand, *restaurant.Restaurant]
	ListRestaurants  Handler[queries.ListRestaurantsQuery, kernel.PageResult[queries.RestaurantSummary]]

	CreateDish            Handler[commands.CreateDishCommand, *dish.Dish]
	UpdateDish            Handler[commands.UpdateDishCommand, *dish.Dish]
	ChangeDishActive      Handler[commands.ChangeDishActiveStatusCommand, *dish.Dish]
	GetDishesByRestaurant Handler[queries.GetDishesByRestaurantQuery, kernel.PageResult[queries.DishResponse]]

	CreateOrder    Handler[commands.CreateOrderCommand, *order.Order]
	ListOrders     Handler[queries.GetOrdersByRestaurantAndStatusQuery, kernel.PageResult[queries.OrderResponse]]
	AssignOrder    Handler[commands.AssignOrderCommand, *order.Order]
	MarkOrderReady Handler[commands.MarkOrderReadyCommand, *order.Order]
	DeliverOrder   Handler[commands.DeliverOrderCommand, *order.Order]
	CancelOrder    Handler[commands.CancelOrderCommand, *order.Order]

	GetOrderTraceability Handler[queries.GetOrderTraceabilityQuery, []traceability.Record]
	GetOrdersEfficiency  Handler[queries.RestaurantAnalyticsQuery, []traceability.OrderEfficiency]
	GetEmployeeRanking   Handler[queries.RestaurantAnalyticsQuery, []traceability.EmployeeRanking]
}

// Server translates HTTP requests into commands and queries and their
// results into JSON.
type Server struct {
	handlers  Handlers
	presenter OrderPresenter
}

func NewServer(handlers Handlers, presenter OrderPresenter) *Server {
	return &Server{handlers: handlers, presenter: presenter}
}
