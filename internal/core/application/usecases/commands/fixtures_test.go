package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRestaurant(t *testing.T, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "La Fonda", "900123456", "Calle 10 #5-20",
		"+573001234567", "https://cdn.example/fonda.png", ownerID)
	require.NoError(t, err)
	return r
}

func newDish(t *testing.T, restaurantID kernel.UUID, active bool) *dish.Dish {
	t.Helper()
	d, err := dish.RestoreDish(kernel.NewUUID(), restaurantID, "Bandeja paisa", 15000,
		"Beans, rice and chicharron", "https://cdn.example/bandeja.png", "Typical", active)
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, restaurantID kernel.UUID, status order.Status, employeeID *kernel.UUID, pin *string) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2)
	require.NoError(t, err)
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, employeeID, status, pin,
		[]order.Item{item}, now, now, 1)
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}
