package postgres

import (
	"fmt"
	"log/slog"

	"foodcourt/internal/adapters/out/postgres/dishrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/outboxrepo"
	"foodcourt/internal/adapters/out/postgres/restaurantrepo"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// activeOrderIndex allows one order per client among the pending,
// in-preparation and ready ones.
const activeOrderIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_client_active
	ON orders (client_id) WHERE status IN (%d, %d, %d)`

// DSN builds a libpq connection string.
func DSN(host string, port int, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

// Open connects with duplicate-key and foreign-key errors translated to the
// gorm sentinels the repositories match on.
func Open(dsn string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	return db, nil
}

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&dishrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OutboxDTO{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	statuses := orderrepo.ActiveStatusCodes()
	if err := db.Exec(fmt.Sprintf(activeOrderIndex, statuses[0], statuses[1], statuses[2])).Error; err != nil {
		return errors.Wrap(err, "failed to create active order index")
	}

	return nil
}
