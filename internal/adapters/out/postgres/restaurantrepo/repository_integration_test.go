package restaurantrepo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/restaurantrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
	tracker    *MockAggregateTracker
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(connStr, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = restaurantrepo.NewGormRestaurantRepository(suite.db, suite.tracker)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	r := suite.newRestaurant("La Fonda", "900123456")

	suite.tracker.On("TrackAggregate", r.ID(), r).Once()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal("La Fonda", got.Name())
	suite.Equal("900123456", got.Nit())
	suite.Equal("Calle 10 # 5-20", got.Address())
	suite.Equal("+573001234567", got.Phone())
	suite.True(got.IsOwnedBy(r.OwnerID()))

	exists, err := suite.repository.ExistsByNit(ctx, "900123456")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByNit(ctx, "111111111")
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_DuplicateNit_Conflicts() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newRestaurant("La Fonda", "900123456")))

	err := suite.repository.Add(ctx, suite.newRestaurant("El Corral", "900123456"))
	suite.Require().ErrorIs(err, restaurant.ErrDuplicateNit)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, restaurant.ErrRestaurantNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestList_OrdersByNameAndPages() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for i, name := range []string{"Wok", "Arepas", "Mister Pollo"} {
		nit := []string{"900000001", "900000002", "900000003"}[i]
		suite.Require().NoError(suite.repository.Add(ctx, suite.newRestaurant(name, nit)))
	}

	page, err := kernel.NewPage(0, 2)
	suite.Require().NoError(err)

	result, err := suite.repository.List(ctx, page)
	suite.Require().NoError(err)
	suite.Equal(int64(3), result.TotalItems)
	suite.Require().Len(result.Items, 2)
	suite.Equal("Arepas", result.Items[0].Name())
	suite.Equal("Mister Pollo", result.Items[1].Name())

	last, err := kernel.NewPage(1, 2)
	suite.Require().NoError(err)

	result, err = suite.repository.List(ctx, last)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal("Wok", result.Items[0].Name())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) newRestaurant(name, nit string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, nit, "Calle 10 # 5-20", "+573001234567",
		"https://cdn.example.com/logo.png", kernel.NewUUID())
	suite.Require().NoError(err)
	return r
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
