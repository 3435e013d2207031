package interceptors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/tracing"
)

// RequestIDHeader carries a caller-supplied request id
const RequestIDHeader = "x-request-id"

// LoggingInterceptor provides request logging middleware for gRPC
type LoggingInterceptor struct{}

// NewLoggingInterceptor creates a new logging interceptor
func NewLoggingInterceptor() *LoggingInterceptor {
	return &LoggingInterceptor{}
}

// Unary returns a unary interceptor for request logging and metrics
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		ctx = log.WithRequestID(ctx, requestIDFromMetadata(ctx))
		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			ctx = log.WithTraceID(ctx, traceID)
		}

		log.Debug(ctx, "gRPC request started", zap.String("method", info.FullMethod))

		resp, err := handler(ctx, req)
		duration := time.Since(start)

		code := status.Code(err)
		metrics.RecordGRPCRequest(info.FullMethod, code.String(), duration)

		switch {
		case err == nil:
			log.Info(ctx, "gRPC request completed",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", duration),
				zap.String("code", codes.OK.String()))
		case code == codes.Internal || code == codes.Unknown:
			log.Error(ctx, "gRPC request failed",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", duration),
				zap.String("code", code.String()),
				zap.String("error", status.Convert(err).Message()))
		default:
			log.Warn(ctx, "gRPC request rejected",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", duration),
				zap.String("code", code.String()),
				zap.String("error", status.Convert(err).Message()))
		}

		return resp, err
	}
}

func requestIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.New().String()
}
