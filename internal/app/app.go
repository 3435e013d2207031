package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/staylane/pricingservice/internal/booking"
	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/config"
	"github.com/staylane/pricingservice/internal/events"
	"github.com/staylane/pricingservice/internal/httpapi"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/outbox"
	"github.com/staylane/pricingservice/internal/pricing"
	"github.com/staylane/pricingservice/internal/repository/postgres"
	"github.com/staylane/pricingservice/internal/server"
)

// App represents the application
type App struct {
	config        *config.Config
	logger        *zap.Logger
	store         *postgres.Store
	cache         *cache.Cache
	publisher     events.Publisher
	outboxWorker  *outbox.Worker
	grpcServer    *server.GRPCServer
	httpServer    *httpapi.Server
	metricsServer *metrics.Server
	stopTracing   func(context.Context)
}

// New creates a new application instance
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := log.Init(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := log.L(ctx)

	logger.Info("Initializing pricing service application",
		zap.String("app_name", cfg.AppName),
		zap.String("http_address", cfg.HTTP.Address),
		zap.String("grpc_address", cfg.GRPC.Address))

	a := &App{config: cfg, logger: logger}
	if err := a.init(ctx); err != nil {
		a.close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.config

	stopTracing, err := InitTracing(cfg, a.logger)
	if err != nil {
		return err
	}
	a.stopTracing = stopTracing

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(dbCtx, postgres.PoolConfig{
		DSN:             cfg.Postgres.DSN,
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	store, err := postgres.NewStoreWithPool(pool)
	if err != nil {
		pool.Close()
		return err
	}
	a.store = store
	if cfg.Postgres.AutoMigrate {
		if err := store.Migrate(dbCtx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c, err := NewCache(ctx, cfg)
	if err != nil {
		a.logger.Warn("Redis initialization failed, continuing without quote cache",
			zap.Error(err),
			zap.String("redis_addr", cfg.Redis.Addr))
		c = nil
	}
	a.cache = c

	a.publisher, err = NewPublisher(ctx, cfg, a.logger)
	if err != nil {
		return err
	}

	validator, err := NewValidator(cfg)
	if err != nil {
		return err
	}

	bookings := booking.NewService(store, store, pricing.NewEngine(a.logger), booking.Options{
		SearchConcurrency: cfg.Pricing.SearchConcurrency,
		MaxNights:         cfg.Pricing.MaxNights,
		Cache:             NewQuoteCache(cfg, c),
		Logger:            a.logger,
	})
	a.outboxWorker = outbox.NewWorker(store.Outbox(), a.publisher, a.logger, outbox.Config{
		Interval:  cfg.Kafka.OutboxInterval,
		BatchSize: cfg.Kafka.OutboxBatchSize,
	})
	limiter := NewRateLimiter(cfg, c, a.logger)

	grpcChecks := map[string]server.HealthChecker{"postgres": store}
	httpChecks := map[string]httpapi.HealthChecker{"postgres": store}
	if c != nil {
		grpcChecks["redis"] = c
		httpChecks["redis"] = c
	}

	if cfg.GRPC.Address != "" {
		a.grpcServer = server.NewGRPCServer(cfg.GRPC, server.Options{
			Validator:       validator,
			RateLimiter:     limiter,
			Checks:          grpcChecks,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
			Logger:          a.logger,
		})
		a.grpcServer.RegisterPricingService(server.NewPricingHandler(bookings))
	}

	if cfg.HTTP.Address != "" {
		gin.SetMode(gin.ReleaseMode)
		router := httpapi.NewRouter(httpapi.NewHandler(bookings, httpChecks), httpapi.RouterOptions{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			Validator:      validator,
			RateLimiter:    limiter,
			Logger:         a.logger,
		})
		a.httpServer = httpapi.NewServer(cfg.HTTP, router, a.logger)
	}

	if cfg.Metrics.Enabled {
		a.metricsServer = metrics.NewServer(cfg.Metrics.Address, a.logger)
	}
	return nil
}

// Run serves every configured listener until ctx is cancelled or one fails
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting pricing service application")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.outboxWorker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("outbox worker error: %w", err)
		}
		return nil
	})

	if a.grpcServer != nil {
		a.grpcServer.StartHealthMonitoring(ctx)
		g.Go(func() error {
			if err := a.grpcServer.Serve(ctx); err != nil {
				return fmt.Errorf("gRPC server error: %w", err)
			}
			return nil
		})
	}
	if a.httpServer != nil {
		g.Go(a.httpServer.Start)
		g.Go(func() error {
			<-ctx.Done()
			return a.shutdownWithTimeout(a.httpServer.Shutdown)
		})
	}
	if a.metricsServer != nil {
		g.Go(a.metricsServer.Start)
		g.Go(func() error {
			<-ctx.Done()
			return a.shutdownWithTimeout(a.metricsServer.Shutdown)
		})
	}

	return g.Wait()
}

func (a *App) shutdownWithTimeout(shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
	defer cancel()
	return shutdown(ctx)
}

// Shutdown releases connections held by the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down pricing service application")
	if a.outboxWorker != nil {
		if err := a.outboxWorker.Stop(ctx); err != nil {
			a.logger.Warn("Outbox events left for the next start", zap.Error(err))
		}
	}
	a.close(ctx)
	a.logger.Info("Application shutdown complete")
	_ = a.logger.Sync()
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.stopTracing != nil {
		a.stopTracing(ctx)
	}
}
