package queries_test

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/traceability"

	"github.com/stretchr/testify/mock"
)

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ExistsByNit(ctx context.Context, nit string) (bool, error) {
	args := m.Called(ctx, nit)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) List(
	ctx context.Context,
	page kernel.Page,
) (kernel.PageResult[*restaurant.Restaurant], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(kernel.PageResult[*restaurant.Restaurant]), args.Error(1)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) ListActiveByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	category string,
	page kernel.Page,
) (kernel.PageResult[*dish.Dish], error) {
	args := m.Called(ctx, restaurantID, category, page)
	return args.Get(0).(kernel.PageResult[*dish.Dish]), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsActiveForClient(ctx context.Context, clientID kernel.UUID) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListByRestaurantAndStatus(
	ctx context.Context,
	restaurantID kernel.UUID,
	status order.Status,
	page kernel.Page,
) (kernel.PageResult[*order.Order], error) {
	args := m.Called(ctx, restaurantID, status, page)
	return args.Get(0).(kernel.PageResult[*order.Order]), args.Error(1)
}

type MockEmployeeDirectory struct{ mock.Mock }

func (m *MockEmployeeDirectory) RestaurantOf(ctx context.Context, employeeID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockEmployeeDirectory) EmailOf(ctx context.Context, employeeID kernel.UUID) (string, error) {
	args := m.Called(ctx, employeeID)
	return args.String(0), args.Error(1)
}

type MockTraceabilityStore struct{ mock.Mock }

func (m *MockTraceabilityStore) Append(ctx context.Context, record traceability.Record) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockTraceabilityStore) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]traceability.Record, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]traceability.Record), args.Error(1)
}

func (m *MockTraceabilityStore) GetOrdersEfficiency(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.OrderEfficiency, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]traceability.OrderEfficiency), args.Error(1)
}

func (m *MockTraceabilityStore) GetEmployeeRanking(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.EmployeeRanking, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]traceability.EmployeeRanking), args.Error(1)
}

func mustRestaurant(ownerID kernel.UUID, name string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, "900123456", "Calle 10", "3001234567", "logo.png", ownerID)
	if err != nil {
		panic(err)
	}
	return r
}

func mustDish(restaurantID kernel.UUID, name string, price int) *dish.Dish {
	d, err := dish.NewDish(kernel.NewUUID(), restaurantID, name, price, "", "", "Typical")
	if err != nil {
		panic(err)
	}
	return d
}

func mustOrder(restaurantID kernel.UUID, dishIDs ...kernel.UUID) *order.Order {
	items := make([]order.Item, 0, len(dishIDs))
	for _, id := range dishIDs {
		item, err := order.NewItem(id, 1)
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, items, time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return o
}

func mustPage(number, size int) kernel.Page {
	p, err := kernel.NewPage(number, size)
	if err != nil {
		panic(err)
	}
	return p
}
