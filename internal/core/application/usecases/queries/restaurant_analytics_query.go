package queries

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/guard"
)

var ErrRestaurantAnalyticsQueryIsNotConstructed = errors.New(
	"RestaurantAnalyticsQuery must be created via NewRestaurantAnalyticsQuery constructor",
)

// RestaurantAnalyticsQuery asks for the analytics of a restaurant on behalf of its owner.
type RestaurantAnalyticsQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID

	guard guard.ConstructorGuard
}

func NewRestaurantAnalyticsQuery(restaurantID, ownerID kernel.UUID) (RestaurantAnalyticsQuery, error) {
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate()); err != nil {
		return RestaurantAnalyticsQuery{}, err
	}
	return RestaurantAnalyticsQuery{restaurantID: restaurantID, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q RestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantAnalyticsQueryIsNotConstructed)
}

func (q RestaurantAnalyticsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q RestaurantAnalyticsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ensureOwner fails with restaurant.ErrRestaurantNotFound or
// restaurant.ErrUserNotRestaurantOwner.
func ensureOwner(ctx context.Context, restaurants ports.RestaurantRepository, q RestaurantAnalyticsQuery) error {
	if err := q.Validate(); err != nil {
		return err
	}
	r, err := restaurants.Get(ctx, q.RestaurantID())
	if err != nil {
		return err
	}
	return r.EnsureOwnedBy(q.OwnerID())
}

// GetOrdersEfficiencyQueryHandler passes the store's per-order durations through unchanged.
type GetOrdersEfficiencyQueryHandler struct {
	restaurants ports.RestaurantRepository
	store       ports.TraceabilityStore
}

func NewGetOrdersEfficiencyQueryHandler(
	restaurants ports.RestaurantRepository,
	store ports.TraceabilityStore,
) GetOrdersEfficiencyQueryHandler {
	return GetOrdersEfficiencyQueryHandler{restaurants: restaurants, store: store}
}

func (h GetOrdersEfficiencyQueryHandler) Handle(
	ctx context.Context,
	query RestaurantAnalyticsQuery,
) ([]traceability.OrderEfficiency, error) {
	if err := ensureOwner(ctx, h.restaurants, query); err != nil {
		return nil, err
	}
	return h.store.GetOrdersEfficiency(ctx, query.RestaurantID())
}

// GetEmployeeRankingQueryHandler passes the store's ranking through unchanged,
// fastest employee first.
type GetEmployeeRankingQueryHandler struct {
	restaurants ports.RestaurantRepository
	store       ports.TraceabilityStore
}

func NewGetEmployeeRankingQueryHandler(
	restaurants ports.RestaurantRepository,
	store ports.TraceabilityStore,
) GetEmployeeRankingQueryHandler {
	return GetEmployeeRankingQueryHandler{restaurants: restaurants, store: store}
}

func (h GetEmployeeRankingQueryHandler) Handle(
	ctx context.Context,
	query RestaurantAnalyticsQuery,
) ([]traceability.EmployeeRanking, error) {
	if err := ensureOwner(ctx, h.restaurants, query); err != nil {
		return nil, err
	}
	return h.store.GetEmployeeRanking(ctx, query.RestaurantID())
}
