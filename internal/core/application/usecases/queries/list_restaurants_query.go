package queries

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery pages through all restaurants ordered by name.
type ListRestaurantsQuery struct {
	page kernel.Page

	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery(page kernel.Page) ListRestaurantsQuery {
	return ListRestaurantsQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) Page() kernel.Page {
	return q.page
}

type ListRestaurantsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

func NewListRestaurantsQueryHandler(restaurants ports.RestaurantRepository) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{restaurants: restaurants}
}

func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) (kernel.PageResult[RestaurantSummary], error) {
	if err := query.Validate(); err != nil {
		return kernel.PageResult[RestaurantSummary]{}, err
	}

	result, err := h.restaurants.List(ctx, query.Page())
	if err != nil {
		return kernel.PageResult[RestaurantSummary]{}, err
	}

	return kernel.MapPageResult(result, restaurantSummary), nil
}
