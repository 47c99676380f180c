package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// OrderEnricher resolves restaurant and dish names for presentation. A lookup
// that fails leaves its field unset instead of failing the response.
type OrderEnricher struct {
	restaurants ports.RestaurantRepository
	dishes      ports.DishRepository
}

func NewOrderEnricher(restaurants ports.RestaurantRepository, dishes ports.DishRepository) OrderEnricher {
	return OrderEnricher{restaurants: restaurants, dishes: dishes}
}

func (e OrderEnricher) Enrich(ctx context.Context, o *order.Order) OrderResponse {
	return e.enrich(ctx, o, make(map[kernel.UUID]string))
}

// EnrichAll shares restaurant lookups across a page of orders.
func (e OrderEnricher) EnrichAll(ctx context.Context, orders []*order.Order) []OrderResponse {
	names := make(map[kernel.UUID]string)
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, e.enrich(ctx, o, names))
	}
	return out
}

func (e OrderEnricher) enrich(ctx context.Context, o *order.Order, names map[kernel.UUID]string) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID(),
		ClientID:     o.ClientID(),
		RestaurantID: o.RestaurantID(),
		EmployeeID:   o.EmployeeID(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}

	if name, ok := names[o.RestaurantID()]; ok {
		resp.RestaurantName = name
	} else if r, err := e.restaurants.Get(ctx, o.RestaurantID()); err == nil {
		resp.RestaurantName = r.Name()
		names[o.RestaurantID()] = r.Name()
	}

	items := o.Items()
	resp.Items = make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		line := OrderItemResponse{DishID: item.DishID(), Quantity: item.Quantity()}
		if d, err := e.dishes.Get(ctx, item.DishID()); err == nil {
			price := d.Price()
			line.DishName = d.Name()
			line.Price = &price
		}
		resp.Items = append(resp.Items, line)
	}

	return resp
}
