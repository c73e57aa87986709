package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fooddelivery/restaurant-api/internal/api"
	"github.com/fooddelivery/restaurant-api/internal/api/handler"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
	"github.com/fooddelivery/restaurant-api/internal/core/service"
	mongodb "github.com/fooddelivery/restaurant-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fooddelivery/restaurant-api/internal/infrastructure/db/redis"
	"github.com/fooddelivery/restaurant-api/internal/infrastructure/queue"
	"github.com/fooddelivery/restaurant-api/internal/pkg/config"
	"github.com/fooddelivery/restaurant-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title                       Restaurant API
// @version                     1.0
// @description                 Food delivery backend: restaurants, dishes, orders and users behind bearer-token auth.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "restaurant-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envFileErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, nil)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "restaurant-api",
	})
	if envFileErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	hasher, err := security.NewHasher(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}

	if cfg.SeedData {
		seeded, err := mongodb.Seed(ctx, db, hasher, time.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if seeded {
			log.Info().Msg("database seeded with sample data")
		}
	}

	roleRepo := mongodb.NewRoleRepository(db)
	roles, err := roleRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	if err := domain.CheckRoleCatalog(roles); err != nil {
		return err
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	// --- Notifications ---
	notifyCtx, cancelNotify := context.WithCancel(context.Background())
	defer cancelNotify()
	dispatcher := queue.NewDispatcher(cfg.Notifications.Workers, nil, logger.Component("notifications"))
	dispatcher.Start(notifyCtx)

	// --- Auth ---
	issuer, err := security.NewTokenIssuer(security.TokenConfig{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
		TTL:      cfg.Auth.TokenTTL,
	})
	if err != nil {
		return err
	}

	// --- Services ---
	restaurantRepo := mongodb.NewRestaurantRepository(db)
	dishRepo := mongodb.NewDishRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	cache := redisdb.NewRestaurantCache(redisClient, cfg.Cache.RestaurantTTL)
	svcLog := logger.Component("service")

	e := api.NewRouter(api.Dependencies{
		Auth:        service.NewAuthService(userRepo, hasher, issuer, logger.Component("auth")),
		Restaurants: service.NewRestaurantService(restaurantRepo, cache, svcLog),
		Dishes:      service.NewDishService(dishRepo, restaurantRepo, cache, dispatcher, svcLog),
		Orders:      service.NewOrderService(orderRepo, userRepo, restaurantRepo, dishRepo, dispatcher, svcLog),
		Roles:       service.NewRoleService(roleRepo),
		Users:       service.NewUserService(userRepo, roleRepo, hasher, dispatcher, svcLog),
		Guard:       security.NewGuard(issuer),
		Checks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongodb.Ping(ctx, mongoClient) },
			"redis":   func(ctx context.Context) error { return redisdb.Ping(ctx, redisClient) },
		},
		Log: logger.Component("http"),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Msg("http server listening")
		if err := e.Start(cfg.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
	cancelNotify()
	log.Info().Int64("notifications_dropped", dispatcher.Dropped()).Msg("server stopped")
	return nil
}
