package http

import (
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return err
	}
	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		dishID, err := kernel.UUIDFromString(item.DishID)
		if err != nil {
			return err
		}
		lines = append(lines, commands.OrderLine{DishID: dishID, Quantity: item.Quantity})
	}
	caller, _ := CallerFrom(c)

	cmd, err := commands.NewCreateOrderCommand(caller.ID, restaurantID, lines)
	if err != nil {
		return err
	}
	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s.present(c, o))
}

func (s *Server) ListOrders(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	query, err := queries.NewGetOrdersByRestaurantAndStatusQuery(caller.ID, c.QueryParam("status"), page)
	if err != nil {
		return err
	}
	result, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(result, newOrderResponse))
}

func (s *Server) AssignOrder(c echo.Context) error {
	return s.transition(c, func(orderID, callerID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewAssignOrderCommand(orderID, callerID)
		if err != nil {
			return nil, err
		}
		return s.handlers.AssignOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) MarkOrderReady(c echo.Context) error {
	return s.transition(c, func(orderID, callerID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewMarkOrderReadyCommand(orderID, callerID)
		if err != nil {
			return nil, err
		}
		return s.handlers.MarkOrderReady.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) DeliverOrder(c echo.Context) error {
	var req DeliverOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return s.transition(c, func(orderID, callerID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewDeliverOrderCommand(orderID, callerID, req.Pin)
		if err != nil {
			return nil, err
		}
		return s.handlers.DeliverOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) CancelOrder(c echo.Context) error {
	return s.transition(c, func(orderID, callerID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCancelOrderCommand(orderID, callerID)
		if err != nil {
			return nil, err
		}
		return s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) GetOrderTraceability(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	query, err := queries.NewGetOrderTraceabilityQuery(orderID, caller.ID)
	if err != nil {
		return err
	}
	records, err := s.handlers.GetOrderTraceability.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(records, newTraceabilityRecordResponse))
}

// transition runs fn with the order id from the path and the caller id, and
// answers with the updated order.
func (s *Server) transition(c echo.Context, fn func(orderID, callerID kernel.UUID) (*order.Order, error)) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	o, err := fn(orderID, caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.present(c, o))
}

func (s *Server) present(c echo.Context, o *order.Order) OrderResponse {
	return newOrderResponse(s.presenter.Enrich(c.Request().Context(), o))
}
