package interceptors

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/staylane/pricingservice/internal/auth"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
)

// AuthInterceptor validates bearer tokens on guest-scoped methods and puts
// the guest id on the request context.
type AuthInterceptor struct {
	validator auth.Validator
	protected map[string]bool
}

// NewAuthInterceptor creates a new authentication interceptor. Methods not
// listed in protectedMethods are public.
func NewAuthInterceptor(validator auth.Validator, protectedMethods ...string) *AuthInterceptor {
	protected := make(map[string]bool, len(protectedMethods))
	for _, m := range protectedMethods {
		protected[m] = true
	}
	return &AuthInterceptor{validator: validator, protected: protected}
}

// Unary returns a unary interceptor for authentication
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if !i.protected[info.FullMethod] {
			return handler(ctx, req)
		}

		ctx, err := i.authenticate(ctx)
		if err != nil {
			log.Warn(ctx, "Authentication failed",
				zap.String("method", info.FullMethod),
				zap.Error(err))
			return nil, err
		}
		return handler(ctx, req)
	}
}

// authenticate performs authentication check
func (i *AuthInterceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx, status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return ctx, status.Error(codes.Unauthenticated, "authorization token is not provided")
	}

	token := auth.ExtractTokenFromAuthHeader(authHeader[0])
	if token == "" {
		return ctx, status.Error(codes.Unauthenticated, "invalid authorization token")
	}

	guestID, err := i.validator.Validate(ctx, token)
	if err != nil {
		msg := "invalid authorization token"
		if de := domain.GetDomainError(err); de != nil {
			msg = de.Message
		}
		return ctx, status.Error(codes.Unauthenticated, msg)
	}

	return log.WithGuestID(ctx, guestID), nil
}
