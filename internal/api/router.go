package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/fooddelivery/restaurant-api/docs"
	"github.com/fooddelivery/restaurant-api/internal/api/handler"
	"github.com/fooddelivery/restaurant-api/internal/api/middleware"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Auth        ports.AuthService
	Restaurants ports.RestaurantService
	Dishes      ports.DishService
	Orders      ports.OrderService
	Roles       ports.RoleService
	Users       ports.UserService

	Guard  middleware.Authorizer
	Checks map[string]handler.DependencyCheck
	Log    zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "restaurant_api",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	guard := d.Guard
	can := func(p domain.Permission) echo.MiddlewareFunc {
		return middleware.RequirePermission(guard, p)
	}

	api := e.Group("/api")

	authHandler := handler.NewAuthHandler(d.Auth)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/me", authHandler.Me, middleware.Authenticated(guard))

	restaurants := handler.NewRestaurantHandler(d.Restaurants)
	api.GET("/restaurants", restaurants.List, can(domain.PermRestaurantsRead))
	api.GET("/restaurants/:id", restaurants.Get, can(domain.PermRestaurantsRead))
	api.POST("/restaurants", restaurants.Create, can(domain.PermRestaurantsWrite))
	api.PUT("/restaurants/:id", restaurants.Update, can(domain.PermRestaurantsWrite))
	api.DELETE("/restaurants/:id", restaurants.Delete, can(domain.PermRestaurantsDelete))

	dishes := handler.NewDishHandler(d.Dishes)
	api.GET("/dishes", dishes.List, can(domain.PermDishesRead))
	api.GET("/dishes/:id", dishes.Get, can(domain.PermDishesRead))
	api.POST("/dishes", dishes.Create, can(domain.PermDishesWrite))
	api.PUT("/dishes/:id", dishes.Update, can(domain.PermDishesWrite))
	api.DELETE("/dishes/:id", dishes.Delete, can(domain.PermDishesDelete))

	orders := handler.NewOrderHandler(d.Orders)
	api.GET("/orders", orders.List, can(domain.PermOrdersRead))
	api.GET("/orders/stats", orders.Stats, can(domain.PermOrdersRead))
	api.GET("/orders/:id", orders.Get, can(domain.PermOrdersRead))
	api.POST("/orders", orders.Create, can(domain.PermOrdersWrite))
	api.PUT("/orders/:id", orders.Update, can(domain.PermOrdersWrite))
	api.DELETE("/orders/:id", orders.Delete, can(domain.PermOrdersDelete))

	roles := handler.NewRoleHandler(d.Roles)
	api.GET("/roles", roles.List, can(domain.PermRolesRead))
	api.GET("/roles/:id", roles.Get, can(domain.PermRolesRead))

	users := handler.NewUserHandler(d.Users)
	api.GET("/users", users.List, can(domain.PermUsersRead))
	api.GET("/users/:id", users.Get, can(domain.PermUsersRead))
	api.POST("/users", users.Create, can(domain.PermUsersWrite))
	api.PUT("/users/:id", users.Update, can(domain.PermUsersWrite))
	api.PATCH("/users/:id/password", users.ChangePassword, can(domain.PermUsersPassword))
	api.DELETE("/users/:id", users.Delete, can(domain.PermUsersDelete))

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
