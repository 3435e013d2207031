package ratelimit

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/log"
)

// RateLimiter defines the interface for rate limiting
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisClient defines the Redis operations the limiter needs
type RedisClient interface {
	TxPipeline() redis.Pipeliner
}

// Config holds rate limiting configuration
type Config struct {
	Enabled           bool
	RequestsPerMinute int
}

// DefaultConfig returns a default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		RequestsPerMinute: 120,
	}
}

// RedisRateLimiter is a fixed one-minute window counter per key
type RedisRateLimiter struct {
	redis  RedisClient
	limit  int64
	window time.Duration
	logger *zap.Logger
}

// NewRedisRateLimiter creates a new Redis-based rate limiter
func NewRedisRateLimiter(client RedisClient, cfg Config, logger *zap.Logger) *RedisRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := cfg.RequestsPerMinute
	if limit <= 0 {
		limit = DefaultConfig().RequestsPerMinute
	}
	return &RedisRateLimiter{
		redis:  client,
		limit:  int64(limit),
		window: time.Minute,
		logger: logger,
	}
}

// Allow checks if a request is allowed based on the rate limit. The window
// key is created with its TTL and incremented in one MULTI, so a key can never
// be left without an expiry.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = "ratelimit:" + key

	pipe := r.redis.TxPipeline()
	pipe.SetNX(ctx, key, 0, r.window)
	incr := pipe.Incr(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit error: %w", err)
	}

	count := incr.Val()
	if count > r.limit {
		r.logger.Debug("Rate limit exceeded",
			zap.String("key", key),
			zap.Int64("count", count))
		return false, nil
	}
	return true, nil
}

// ClientKey identifies the caller: the authenticated guest when known,
// otherwise the remote address.
func ClientKey(ctx context.Context, remoteAddr string) string {
	if guestID := log.GuestID(ctx); guestID != "" {
		return "guest:" + guestID
	}
	return "addr:" + remoteAddr
}

// UnaryServerInterceptor returns a gRPC unary server interceptor for rate
// limiting. Limiter failures let the request through.
func UnaryServerInterceptor(limiter RateLimiter) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		remote := "unknown"
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			remote = hostOnly(p.Addr.String())
		}
		key := ClientKey(ctx, remote) + ":" + info.FullMethod

		allowed, err := limiter.Allow(ctx, key)
		if err != nil {
			log.Warn(ctx, "Rate limit check failed, allowing request",
				zap.Error(err),
				zap.String("method", info.FullMethod))
			return handler(ctx, req)
		}
		if !allowed {
			log.Warn(ctx, "Rate limit exceeded",
				zap.String("key", key),
				zap.String("method", info.FullMethod))
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded on %s", info.FullMethod)
		}

		return handler(ctx, req)
	}
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
