package ratelimit

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/log"
)

func newLimiter(t *testing.T, limit int) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateLimiter(client, Config{Enabled: true, RequestsPerMinute: limit}, nil), mr
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter, mr := newLimiter(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "guest:1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "guest:1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "guest:2")
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	assert.True(t, mr.TTL("ratelimit:guest:1") > 0)
	mr.FastForward(limiter.window)
	ok, err = limiter.Allow(ctx, "guest:1")
	require.NoError(t, err)
	assert.True(t, ok, "window resets")
}

func TestRedisRateLimiter_WindowExpiryIsFixedFromFirstHit(t *testing.T) {
	limiter, mr := newLimiter(t, 10)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "guest:1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, limiter.window, mr.TTL("ratelimit:guest:1"))

	mr.FastForward(limiter.window / 2)
	ok, err = limiter.Allow(ctx, "guest:1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, limiter.window/2, mr.TTL("ratelimit:guest:1"))

	got, err := mr.Get("ratelimit:guest:1")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	limiter, mr := newLimiter(t, 2)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "guest:1")
	assert.Error(t, err)
}

func TestClientKey(t *testing.T) {
	assert.Equal(t, "addr:10.0.0.1", ClientKey(context.Background(), "10.0.0.1"))
	ctx := log.WithGuestID(context.Background(), "g-1")
	assert.Equal(t, "guest:g-1", ClientKey(ctx, "10.0.0.1"))
}

func TestUnaryServerInterceptor(t *testing.T) {
	limiter, _ := newLimiter(t, 1)
	interceptor := UnaryServerInterceptor(limiter)
	info := &grpc.UnaryServerInfo{FullMethod: "/pricing.v1.PricingService/Quote"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 5555}})

	resp, err := interceptor(ctx, nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = interceptor(ctx, nil, info, handler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestUnaryServerInterceptor_FailsOpen(t *testing.T) {
	limiter, mr := newLimiter(t, 1)
	mr.Close()
	interceptor := UnaryServerInterceptor(limiter)
	info := &grpc.UnaryServerInfo{FullMethod: "/pricing.v1.PricingService/Quote"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestHostOnly(t *testing.T) {
	assert.Equal(t, "10.1.2.3", hostOnly("10.1.2.3:5555"))
	assert.Equal(t, "::1", hostOnly("[::1]:80"))
	assert.Equal(t, "local", hostOnly("local"))
}
