package queries

import (
	"context"
	"errors"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/guard"
)

var ErrGetDishesByRestaurantQueryIsNotConstructed = errors.New(
	"GetDishesByRestaurantQuery must be created via NewGetDishesByRestaurantQuery constructor",
)

// GetDishesByRestaurantQuery lists the active menu of a restaurant. An empty
// category lists every category.
type GetDishesByRestaurantQuery struct {
	restaurantID kernel.UUID
	category     string
	page         kernel.Page

	guard guard.ConstructorGuard
}

func NewGetDishesByRestaurantQuery(
	restaurantID kernel.UUID,
	category string,
	page kernel.Page,
) (GetDishesByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetDishesByRestaurantQuery{}, err
	}
	return GetDishesByRestaurantQuery{
		restaurantID: restaurantID,
		category:     strings.TrimSpace(category),
		page:         page,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetDishesByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetDishesByRestaurantQueryIsNotConstructed)
}

func (q GetDishesByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q GetDishesByRestaurantQuery) Category() string {
	return q.category
}

func (q GetDishesByRestaurantQuery) Page() kernel.Page {
	return q.page
}

type GetDishesByRestaurantQueryHandler struct {
	restaurants ports.RestaurantRepository
	dishes      ports.DishRepository
}

func NewGetDishesByRestaurantQueryHandler(
	restaurants ports.RestaurantRepository,
	dishes ports.DishRepository,
) GetDishesByRestaurantQueryHandler {
	return GetDishesByRestaurantQueryHandler{restaurants: restaurants, dishes: dishes}
}

// Handle fails with restaurant.ErrRestaurantNotFound for an unknown restaurant.
func (h GetDishesByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetDishesByRestaurantQuery,
) (kernel.PageResult[DishResponse], error) {
	if err := query.Validate(); err != nil {
		return kernel.PageResult[DishResponse]{}, err
	}

	if _, err := h.restaurants.Get(ctx, query.RestaurantID()); err != nil {
		return kernel.PageResult[DishResponse]{}, err
	}

	result, err := h.dishes.ListActiveByRestaurant(ctx, query.RestaurantID(), query.Category(), query.Page())
	if err != nil {
		return kernel.PageResult[DishResponse]{}, err
	}

	return kernel.MapPageResult(result, NewDishResponse), nil
}
