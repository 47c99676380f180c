package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"foodcourt/cmd"
	httpadapter "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/amqp"
	"foodcourt/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := newLogger(config)
	slog.SetDefault(logger)

	dsn := postgres.DSN(config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
	gormDB, err := postgres.Open(dsn, logger, config.Debug())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	publisher, err := amqp.Dial(config.AMQPURL, config.NotificationExchange)
	if err != nil {
		log.Fatalf("failed to connect to message broker: %v", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close message broker connection", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(config, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, config.HTTPPort, logger)
}

func newLogger(config cmd.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.SlogLevel()}
	if strings.EqualFold(config.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpadapter.NewEcho(app.CreateHTTPServer(), app.CreateAuthenticator(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	logger.Info("http server stopped")
}
