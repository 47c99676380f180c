package commands_test

import (
	"context"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
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
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
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
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct {
	mock.Mock

	restaurants *MockRestaurantRepository
	dishes      *MockDishRepository
	orders      *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		restaurants: new(MockRestaurantRepository),
		dishes:      new(MockDishRepository),
		orders:      new(MockOrderRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.restaurants
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	return m.dishes
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

// expectTx registers a transaction that commits with commitErr; the deferred
// rollback after a commit is tolerated.
func (m *MockUoW) expectTx(commitErr error) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Commit", mock.Anything).Return(commitErr).Once()
	m.On("Rollback", mock.Anything).Return(nil).Maybe()
}

// expectAbortedTx registers a transaction that must be rolled back without a commit.
func (m *MockUoW) expectAbortedTx() {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.restaurants.AssertExpectations(t)
	m.dishes.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

type restaurantUoWFactory struct{ uow *MockUoW }

func (f restaurantUoWFactory) Create() commands.RestaurantUoW { return f.uow }

type dishUoWFactory struct{ uow *MockUoW }

func (f dishUoWFactory) Create() commands.DishUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserDirectory) GetRole(ctx context.Context, userID kernel.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
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

type MockClientDirectory struct{ mock.Mock }

func (m *MockClientDirectory) PhoneOf(ctx context.Context, clientID kernel.UUID) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}

func (m *MockClientDirectory) EmailOf(ctx context.Context, clientID kernel.UUID) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderReady(ctx context.Context, n ports.OrderReadyNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockTraceabilityStore struct{ mock.Mock }

func (m *MockTraceabilityStore) Append(ctx context.Context, record traceability.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
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

type MockOutbox struct{ mock.Mock }

func (m *MockOutbox) Save(ctx context.Context, record traceability.Record, cause error) error {
	args := m.Called(ctx, record, cause)
	return args.Error(0)
}

func (m *MockOutbox) Pending(ctx context.Context, limit int) ([]ports.OutboxEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxEntry), args.Error(1)
}

func (m *MockOutbox) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOutbox) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	args := m.Called(ctx, id, cause)
	return args.Error(0)
}

type MockEmitter struct{ mock.Mock }

func (m *MockEmitter) Emit(ctx context.Context, o *order.Order, previous order.Status) {
	m.Called(ctx, o, previous)
}

type fixedPin string

func (p fixedPin) Generate() (string, error) { return string(p), nil }
