package cmd

import (
	"log/slog"

	httpadapter "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/amqp"
	"foodcourt/internal/adapters/out/buffered"
	"foodcourt/internal/adapters/out/httpclient"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/dishrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/outboxrepo"
	"foodcourt/internal/adapters/out/postgres/restaurantrepo"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	restaurants ports.RestaurantRepository
	dishes      ports.DishRepository
	orders      ports.OrderRepository
	outbox      ports.TraceabilityOutbox

	users        *httpclient.UsersClient
	traceability *httpclient.TraceabilityClient
	notifier     ports.Notifier
	emitter      commands.TraceabilityEmitter
}

// NewCompositionRoot wires the adapters around gormDB and the notification
// publisher.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher *amqp.Client, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),

		restaurants: restaurantrepo.NewGormRestaurantRepository(gormDB, nil),
		dishes:      dishrepo.NewGormDishRepository(gormDB, nil),
		orders:      orderrepo.NewGormOrderRepository(gormDB, nil),
		outbox:      outboxrepo.NewGormOutboxRepository(gormDB),

		users:        httpclient.NewUsersClient(config.UsersServiceURL, config.CollaboratorTimeout),
		traceability: httpclient.NewTraceabilityClient(config.TraceabilityServiceURL, config.CollaboratorTimeout),
		notifier:     amqp.NewOrderReadyNotifier(publisher, config.NotificationExchange),
	}

	store := buffered.NewTraceabilityStore(c.traceability, c.outbox, logger)
	c.emitter = commands.NewStoreTraceabilityEmitter(
		store, c.dishes, c.users, c.users, config.CollaboratorTimeout, logger,
	)
	return c
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dishUoWFactory() commands.DishUoWFactory {
	return FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateChangeDishActiveStatusCommandHandler() commands.ChangeDishActiveStatusCommandHandler {
	return commands.NewChangeDishActiveStatusCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), services.NewOrderPlacementPolicy(), c.emitter)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory(), c.users, c.emitter)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(
		c.orderUoWFactory(),
		c.users,
		c.users,
		c.notifier,
		services.NewRandomPinGenerator(services.DefaultPinLength),
		c.emitter,
		c.config.CollaboratorTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.users, c.emitter)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.emitter)
}

// CreateReplayTraceabilityCommandHandler sends outbox entries straight to the
// traceability service, never back through the outbox.
func (c *CompositionRoot) CreateReplayTraceabilityCommandHandler() commands.ReplayTraceabilityCommandHandler {
	return commands.NewReplayTraceabilityCommandHandler(c.outbox, c.traceability, c.logger)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.restaurants)
}

func (c *CompositionRoot) CreateGetDishesByRestaurantQueryHandler() queries.GetDishesByRestaurantQueryHandler {
	return queries.NewGetDishesByRestaurantQueryHandler(c.restaurants, c.dishes)
}

func (c *CompositionRoot) CreateOrderEnricher() queries.OrderEnricher {
	return queries.NewOrderEnricher(c.restaurants, c.dishes)
}

func (c *CompositionRoot) CreateGetOrdersByRestaurantAndStatusQueryHandler() queries.GetOrdersByRestaurantAndStatusQueryHandler {
	return queries.NewGetOrdersByRestaurantAndStatusQueryHandler(c.users, c.orders, c.CreateOrderEnricher())
}

func (c *CompositionRoot) CreateGetOrderTraceabilityQueryHandler() queries.GetOrderTraceabilityQueryHandler {
	return queries.NewGetOrderTraceabilityQueryHandler(c.orders, c.traceability)
}

func (c *CompositionRoot) CreateGetOrdersEfficiencyQueryHandler() queries.GetOrdersEfficiencyQueryHandler {
	return queries.NewGetOrdersEfficiencyQueryHandler(c.restaurants, c.traceability)
}

func (c *CompositionRoot) CreateGetEmployeeRankingQueryHandler() queries.GetEmployeeRankingQueryHandler {
	return queries.NewGetEmployeeRankingQueryHandler(c.restaurants, c.traceability)
}

// CreateHTTPHandlers exposes every use case to the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		ListRestaurants:  c.CreateListRestaurantsQueryHandler(),

		CreateDish:            c.CreateCreateDishCommandHandler(),
		UpdateDish:            c.CreateUpdateDishCommandHandler(),
		ChangeDishActive:      c.CreateChangeDishActiveStatusCommandHandler(),
		GetDishesByRestaurant: c.CreateGetDishesByRestaurantQueryHandler(),

		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ListOrders:     c.CreateGetOrdersByRestaurantAndStatusQueryHandler(),
		AssignOrder:    c.CreateAssignOrderCommandHandler(),
		MarkOrderReady: c.CreateMarkOrderReadyCommandHandler(),
		DeliverOrder:   c.CreateDeliverOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),

		GetOrderTraceability: c.CreateGetOrderTraceabilityQueryHandler(),
		GetOrdersEfficiency:  c.CreateGetOrdersEfficiencyQueryHandler(),
		GetEmployeeRanking:   c.CreateGetEmployeeRankingQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateHTTPHandlers(), c.CreateOrderEnricher())
}

func (c *CompositionRoot) CreateAuthenticator() *httpadapter.Authenticator {
	return httpadapter.NewAuthenticator(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReplayTraceabilityCommandHandler(),
		jobs.ReplayConfig{Schedule: c.config.OutboxReplaySchedule, Batch: c.config.OutboxReplayBatch},
		c.logger,
	)
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
