package http

import (
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return err
	}

	cmd := commands.NewCreateRestaurantCommand(req.Name, req.Nit, req.Address, req.Phone, req.LogoURL, ownerID)
	r, err := s.handlers.CreateRestaurant.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newRestaurantResponse(r))
}

func (s *Server) ListRestaurants(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListRestaurants.Handle(c.Request().Context(), queries.NewListRestaurantsQuery(page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(result, newRestaurantSummaryResponse))
}

func (s *Server) GetDishesByRestaurant(c echo.Context) error {
	restaurantID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDishesByRestaurantQuery(restaurantID, c.QueryParam("category"), page)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetDishesByRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(result, newDishResponse))
}

func (s *Server) GetOrdersEfficiency(c echo.Context) error {
	query, err := s.analyticsQuery(c)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetOrdersEfficiency.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(result, newOrderEfficiencyResponse))
}

func (s *Server) GetEmployeeRanking(c echo.Context) error {
	query, err := s.analyticsQuery(c)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetEmployeeRanking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(result, newEmployeeRankingResponse))
}

func (s *Server) analyticsQuery(c echo.Context) (queries.RestaurantAnalyticsQuery, error) {
	restaurantID, err := uuidParam(c, "id")
	if err != nil {
		return queries.RestaurantAnalyticsQuery{}, err
	}
	caller, _ := CallerFrom(c)
	return queries.NewRestaurantAnalyticsQuery(restaurantID, caller.ID)
}
