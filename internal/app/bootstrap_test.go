package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/config"
	"github.com/staylane/pricingservice/internal/events"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName: "pricing-test",
		Auth:    config.AuthConfig{HMACSecret: "secret"},
		Pricing: config.PricingConfig{SearchConcurrency: 2, CacheTTL: time.Minute, MaxNights: 30},
	}
}

func TestNewPublisher_DisabledIsNoop(t *testing.T) {
	p, err := NewPublisher(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, events.NoopPublisher{}, p)
}

func TestNewCacheAndQuoteCache(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	c, err := NewCache(ctx, cfg)
	require.NoError(t, err)
	assert.Nil(t, c, "no address configured")
	assert.Nil(t, NewQuoteCache(cfg, c))

	mr := miniredis.RunT(t)
	cfg.Redis.Addr = mr.Addr()
	c, err = NewCache(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.NotNil(t, NewQuoteCache(cfg, c))

	cfg.Pricing.CacheTTL = 0
	assert.Nil(t, NewQuoteCache(cfg, c))
}

func TestNewRateLimiter(t *testing.T) {
	cfg := testConfig()
	assert.Nil(t, NewRateLimiter(cfg, nil, zap.NewNop()))

	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 10}
	assert.Nil(t, NewRateLimiter(cfg, nil, zap.NewNop()), "needs redis")

	mr := miniredis.RunT(t)
	cfg.Redis.Addr = mr.Addr()
	c, err := NewCache(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.NotNil(t, NewRateLimiter(cfg, c, zap.NewNop()))
}

func TestNewValidator(t *testing.T) {
	_, err := NewValidator(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Auth = config.AuthConfig{}
	_, err = NewValidator(cfg)
	assert.Error(t, err)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(testConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	shutdown(context.Background())
}
