package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/agriconnect/agriconnect-backend/api/routes"
	"github.com/agriconnect/agriconnect-backend/api/validators"
	"github.com/agriconnect/agriconnect-backend/internal/auth"
	"github.com/agriconnect/agriconnect-backend/internal/cart"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/localstate"
	"github.com/agriconnect/agriconnect-backend/internal/products"
	"github.com/agriconnect/agriconnect-backend/internal/users"
	"github.com/agriconnect/agriconnect-backend/pkg/auth/session"
	"github.com/agriconnect/agriconnect-backend/pkg/config"
	"github.com/agriconnect/agriconnect-backend/pkg/db"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
	"github.com/agriconnect/agriconnect-backend/pkg/metrics"
	"github.com/agriconnect/agriconnect-backend/pkg/migrate"
	"github.com/agriconnect/agriconnect-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	stateGateway, err := localstate.NewRedisGateway(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create state gateway", err)
		os.Exit(1)
	}

	resolver := i18n.NewResolver(stateGateway, logg)
	resolver.Hydrate(context.Background())

	carts := cart.NewManager(stateGateway, logg)

	validate := validators.Validator()
	userRepo := users.NewRepository(dbClient.DB())
	userService := users.NewService(userRepo, validate, logg)
	productService := products.NewService(products.NewRepository(dbClient.DB()), validate, logg)
	authService := auth.NewService(userRepo, sessionManager, validate, cfg.JWT, cfg.Password, logg)

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			httpMetrics,
			resolver,
			carts,
			authService,
			userService,
			productService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, carts.FlushAll(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}
