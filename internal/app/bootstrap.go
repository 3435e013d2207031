package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/auth"
	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/config"
	"github.com/staylane/pricingservice/internal/events"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/ratelimit"
	"github.com/staylane/pricingservice/internal/retry"
	"github.com/staylane/pricingservice/internal/tracing"
)

// NewPublisher creates the booking event publisher selected by configuration
func NewPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	if !cfg.Kafka.Enabled {
		log.Info(ctx, "Kafka disabled, booking events will not be published")
		return events.NoopPublisher{}, nil
	}

	retryCfg := retry.DefaultConfig()
	if cfg.Kafka.MaxRetries > 0 {
		retryCfg.MaxAttempts = cfg.Kafka.MaxRetries
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		ClientID: cfg.Kafka.ClientID,
		Retry:    retryCfg,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	log.Info(ctx, "Kafka publisher initialized",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic))
	return publisher, nil
}

// NewCache connects to Redis. A nil cache with a nil error means Redis is
// not configured.
func NewCache(ctx context.Context, cfg *config.Config) (*cache.Cache, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	c, err := cache.NewCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewQuoteCache wraps c when quote caching is enabled
func NewQuoteCache(cfg *config.Config, c *cache.Cache) *cache.QuoteCache {
	if c == nil || !cfg.CacheEnabled() {
		return nil
	}
	return cache.NewQuoteCache(c, cfg.Pricing.CacheTTL)
}

// NewRateLimiter returns a Redis-backed limiter, or nil when limiting is off
func NewRateLimiter(cfg *config.Config, c *cache.Cache, logger *zap.Logger) ratelimit.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if c == nil {
		logger.Warn("Rate limiting enabled but Redis is unavailable, rate limiting disabled")
		return nil
	}
	return ratelimit.NewRedisRateLimiter(c.Client(), ratelimit.Config{
		Enabled:           true,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	}, logger)
}

// NewValidator builds the bearer token validator
func NewValidator(cfg *config.Config) (auth.Validator, error) {
	v, err := auth.NewJWTValidator(auth.Options{
		PublicKeyPEM: cfg.Auth.PublicKeyPEM,
		HMACSecret:   cfg.Auth.HMACSecret,
		Issuer:       cfg.Auth.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}
	return v, nil
}

// InitTracing installs the Jaeger tracer provider when tracing is enabled.
// The returned shutdown function is never nil.
func InitTracing(cfg *config.Config, logger *zap.Logger) (func(context.Context), error) {
	if !cfg.Tracing.Enabled {
		return func(context.Context) {}, nil
	}

	tc := tracing.DefaultConfig()
	tc.ServiceName = cfg.AppName
	tc.Environment = cfg.Tracing.Environment
	tc.JaegerEndpoint = cfg.Tracing.JaegerEndpoint
	tc.SamplingRatio = cfg.Tracing.SamplingRatio

	shutdown, err := tracing.Init(tc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	return shutdown, nil
}
