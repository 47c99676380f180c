package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.Require().NoError(postgres_adapter.Migrate(db), "migration must be repeatable")

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, dishes, restaurants, traceability_outbox").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.DishRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r := createTestRestaurant("900100200")
	d := createTestDish(r.ID())
	o := createTestOrder(r.ID(), d.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.DishRepository().Add(ctx, d))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs()
	suite.Equal([]kernel.UUID{r.ID(), d.ID(), o.ID()}, tracked)

	newUow := suite.factory.Create()
	gotRestaurant, err := newUow.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(r.Nit(), gotRestaurant.Nit())

	gotOrder, err := newUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(gotOrder.Items(), 1)
	suite.True(gotOrder.Items()[0].DishID().IsEqual(d.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r := createTestRestaurant("900100201")
	d := createTestDish(r.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.DishRepository().Add(ctx, d))

	_, err := uow.DishRepository().Get(ctx, d.ID())
	suite.Require().NoError(err, "Dish should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs())

	newUow := suite.factory.Create()
	_, err = newUow.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, restaurant.ErrRestaurantNotFound)
	_, err = newUow.DishRepository().Get(ctx, d.ID())
	suite.Require().ErrorIs(err, dish.ErrDishNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	r1 := createTestRestaurant("900100202")
	r2 := createTestRestaurant("900100203")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.RestaurantRepository().Add(ctx, r1))
	suite.Require().NoError(uow2.RestaurantRepository().Add(ctx, r2))

	_, err := uow1.RestaurantRepository().Get(ctx, r2.ID())
	suite.Require().Error(err, "UOW1 should not see r2")
	_, err = uow2.RestaurantRepository().Get(ctx, r1.ID())
	suite.Require().Error(err, "UOW2 should not see r1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.RestaurantRepository().Get(ctx, r1.ID())
	suite.Require().NoError(err)
	_, err = newUow.RestaurantRepository().Get(ctx, r2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r := createTestRestaurant("900100204")
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))

	_, err := suite.factory.Create().RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
}

func createTestRestaurant(nit string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "La Fonda", nit, "Calle 10 # 5-20", "+573001234567",
		"https://cdn.example.com/fonda.png", kernel.NewUUID())
	if err != nil {
		panic(err)
	}
	return r
}

func createTestDish(restaurantID kernel.UUID) *dish.Dish {
	d, err := dish.NewDish(kernel.NewUUID(), restaurantID, "Bandeja paisa", 15000, "Frijoles, arroz y carne",
		"https://cdn.example.com/bandeja.png", "Typical")
	if err != nil {
		panic(err)
	}
	return d
}

func createTestOrder(restaurantID, dishID kernel.UUID) *order.Order {
	item, err := order.NewItem(dishID, 2)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, []order.Item{item}, time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
