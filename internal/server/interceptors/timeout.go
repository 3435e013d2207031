package interceptors

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/log"
)

// TimeoutInterceptor bounds each call with a per-method deadline
type TimeoutInterceptor struct {
	defaultTimeout time.Duration
	methodTimeouts map[string]time.Duration
}

// NewTimeoutInterceptor creates a new timeout interceptor
func NewTimeoutInterceptor(defaultTimeout time.Duration, methodTimeouts map[string]time.Duration) *TimeoutInterceptor {
	return &TimeoutInterceptor{
		defaultTimeout: defaultTimeout,
		methodTimeouts: methodTimeouts,
	}
}

// Unary returns a unary interceptor for timeout handling
func (i *TimeoutInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		timeout := i.GetMethodTimeout(info.FullMethod)
		if timeout <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, err := handler(ctx, req)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Warn(ctx, "Request timeout exceeded",
				zap.String("method", info.FullMethod),
				zap.Duration("timeout", timeout))
			return nil, status.Error(codes.DeadlineExceeded, "request timeout exceeded")
		}

		return resp, err
	}
}

// GetMethodTimeout returns the timeout for a specific method
func (i *TimeoutInterceptor) GetMethodTimeout(method string) time.Duration {
	if timeout, exists := i.methodTimeouts[method]; exists {
		return timeout
	}
	return i.defaultTimeout
}
