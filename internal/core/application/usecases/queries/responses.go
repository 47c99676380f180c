// Package queries contains the read operations of the food court. Queries
// never change state.
package queries

import (
	"time"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
)

// RestaurantSummary is the public listing entry of a restaurant.
type RestaurantSummary struct {
	ID      kernel.UUID
	Name    string
	LogoURL string
}

func restaurantSummary(r *restaurant.Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID(), Name: r.Name(), LogoURL: r.LogoURL()}
}

// DishResponse is a menu entry.
type DishResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        int
	Description  string
	ImageURL     string
	Category     string
	Active       bool
}

func NewDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:           d.ID(),
		RestaurantID: d.RestaurantID(),
		Name:         d.Name(),
		Price:        d.Price(),
		Description:  d.Description(),
		ImageURL:     d.ImageURL(),
		Category:     d.Category(),
		Active:       d.IsActive(),
	}
}

// OrderItemResponse is an order line joined with its dish. DishName and Price
// stay empty when the dish cannot be read.
type OrderItemResponse struct {
	DishID   kernel.UUID
	DishName string
	Price    *int
	Quantity int
}

// OrderResponse is an order joined with the names of its restaurant and dishes.
type OrderResponse struct {
	ID             kernel.UUID
	ClientID       kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	EmployeeID     *kernel.UUID
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []OrderItemResponse
}
