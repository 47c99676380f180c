package http

import (
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateDish(c echo.Context) error {
	var req CreateDishRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	cmd, err := commands.NewCreateDishCommand(
		restaurantID, caller.ID,
		req.Name, req.Price, req.Description, req.ImageURL, req.Category,
	)
	if err != nil {
		return err
	}
	d, err := s.handlers.CreateDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newDishResponseFromDomain(d))
}

func (s *Server) UpdateDish(c echo.Context) error {
	dishID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateDishRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	cmd, err := commands.NewUpdateDishCommand(dishID, caller.ID, req.Price, req.Description)
	if err != nil {
		return err
	}
	d, err := s.handlers.UpdateDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDishResponseFromDomain(d))
}

func (s *Server) ChangeDishActive(c echo.Context) error {
	dishID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req ChangeDishActiveRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	caller, _ := CallerFrom(c)

	cmd, err := commands.NewChangeDishActiveStatusCommand(dishID, caller.ID, req.Active)
	if err != nil {
		return err
	}
	d, err := s.handlers.ChangeDishActive.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDishResponseFromDomain(d))
}
