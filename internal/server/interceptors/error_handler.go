package interceptors

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
)

// ErrorHandlerInterceptor converts handler errors into gRPC status errors
type ErrorHandlerInterceptor struct{}

// NewErrorHandlerInterceptor creates a new error handler interceptor
func NewErrorHandlerInterceptor() *ErrorHandlerInterceptor {
	return &ErrorHandlerInterceptor{}
}

// Unary returns a unary interceptor for error handling
func (i *ErrorHandlerInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, i.handleError(ctx, err, info.FullMethod)
		}
		return resp, nil
	}
}

// handleError processes and converts errors to appropriate gRPC status codes
func (i *ErrorHandlerInterceptor) handleError(ctx context.Context, err error, method string) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	if domainErr := domain.GetDomainError(err); domainErr != nil {
		return status.Error(CodeFor(domainErr.Code), domainErr.Message)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timeout")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	}

	log.Error(ctx, "Unhandled error in gRPC method",
		zap.String("method", method),
		zap.Error(err))
	return status.Error(codes.Internal, "internal server error")
}

// CodeFor maps a domain error code to a gRPC status code
func CodeFor(code string) codes.Code {
	switch code {
	case domain.ErrCodeInvalidDateRange,
		domain.ErrCodeInvalidOccupancy,
		domain.ErrCodeInvalidInput,
		domain.ErrCodeInvalidCoupon:
		return codes.InvalidArgument
	case domain.ErrCodeMissingRateProfile:
		return codes.FailedPrecondition
	case domain.ErrCodeNotFound:
		return codes.NotFound
	case domain.ErrCodeConflict:
		return codes.AlreadyExists
	case domain.ErrCodeUnauthorized:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}
