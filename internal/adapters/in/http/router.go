package http

import (
	"log/slog"
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance with the validator, error handler and
// request logging installed, and all routes registered.
func NewEcho(server *Server, auth *Authenticator, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))

	server.Register(e, auth)
	return e
}

// Register mounts the routes. Every route except /health needs a bearer token;
// role gates are applied per route.
func (s *Server) Register(e *echo.Echo, auth *Authenticator) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("", auth.Authenticate)

	admin := RequireRole(kernel.RoleAdmin)
	owner := RequireRole(kernel.RoleOwner)
	employee := RequireRole(kernel.RoleEmployee)
	client := RequireRole(kernel.RoleClient)

	api.POST("/restaurants", s.CreateRestaurant, admin)
	api.GET("/restaurants", s.ListRestaurants)
	api.GET("/restaurants/:id/dishes", s.GetDishesByRestaurant)
	api.GET("/restaurants/:id/efficiency", s.GetOrdersEfficiency, owner)
	api.GET("/restaurants/:id/ranking", s.GetEmployeeRanking, owner)

	api.POST("/dishes", s.CreateDish, owner)
	api.PATCH("/dishes/:id", s.UpdateDish, owner)
	api.PATCH("/dishes/:id/active", s.ChangeDishActive, owner)

	api.POST("/orders", s.CreateOrder, client)
	api.GET("/orders", s.ListOrders, employee)
	api.PATCH("/orders/:id/assign", s.AssignOrder, employee)
	api.PATCH("/orders/:id/ready", s.MarkOrderReady, employee)
	api.PATCH("/orders/:id/deliver", s.DeliverOrder, employee)
	api.PATCH("/orders/:id/cancel", s.CancelOrder, client)
	api.GET("/orders/:id/traceability", s.GetOrderTraceability, client)
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
