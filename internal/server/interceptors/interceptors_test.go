package interceptors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
)

const method = "/pricing.v1.PricingService/ConfirmBooking"

type staticValidator map[string]string

func (v staticValidator) Validate(ctx context.Context, token string) (string, error) {
	if guest, ok := v[token]; ok {
		return guest, nil
	}
	return "", domain.NewUnauthorizedError("token has expired")
}

func TestAuthInterceptor(t *testing.T) {
	interceptor := NewAuthInterceptor(staticValidator{"good": "guest-1"}, method).Unary()
	var seenGuest string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seenGuest = log.GuestID(ctx)
		return "ok", nil
	}

	tests := []struct {
		name      string
		method    string
		header    string
		wantCode  codes.Code
		wantGuest string
	}{
		{"public method skips auth", "/pricing.v1.PricingService/Quote", "", codes.OK, ""},
		{"missing header", method, "", codes.Unauthenticated, ""},
		{"invalid token", method, "Bearer nope", codes.Unauthenticated, ""},
		{"valid token", method, "Bearer good", codes.OK, "guest-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenGuest = ""
			ctx := context.Background()
			if tt.header != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.header))
			}
			_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, tt.wantGuest, seenGuest)
		})
	}
}

func TestErrorHandlerInterceptor(t *testing.T) {
	interceptor := NewErrorHandlerInterceptor().Unary()
	info := &grpc.UnaryServerInfo{FullMethod: method}

	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.NewInvalidDateRangeError("check_out must be after check_in"), codes.InvalidArgument},
		{domain.NewInvalidOccupancyError("rooms must be at least 1"), codes.InvalidArgument},
		{domain.NewMissingRateProfileError("hotel-1"), codes.FailedPrecondition},
		{domain.NewNotFoundError("hotel", "x"), codes.NotFound},
		{domain.NewConflictError("booking already exists", ""), codes.AlreadyExists},
		{domain.NewUnauthorizedError("no guest"), codes.Unauthenticated},
		{status.Error(codes.ResourceExhausted, "slow down"), codes.ResourceExhausted},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, tt.err
		})
		assert.Equal(t, tt.want, status.Code(err), "%v", tt.err)
	}
}

func TestTimeoutInterceptor(t *testing.T) {
	ti := NewTimeoutInterceptor(time.Second, map[string]time.Duration{method: 10 * time.Millisecond})
	assert.Equal(t, time.Second, ti.GetMethodTimeout("/other"))

	_, err := ti.Unary()(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestLoggingInterceptor_PropagatesRequestID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))
	var seen interface{}
	_, err := NewLoggingInterceptor().Unary()(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = ctx.Value(log.RequestIDKey)
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "req-42", seen)
}
