package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	pricingv1 "github.com/staylane/pricingservice/api/pricing/v1"
	"github.com/staylane/pricingservice/internal/auth"
	"github.com/staylane/pricingservice/internal/config"
	"github.com/staylane/pricingservice/internal/ratelimit"
	"github.com/staylane/pricingservice/internal/server/interceptors"
)

// HealthChecker is a dependency probed by health monitoring
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Options carries the server's collaborators
type Options struct {
	Validator   auth.Validator
	RateLimiter ratelimit.RateLimiter
	// Checks are probed periodically; all must pass for SERVING
	Checks          map[string]HealthChecker
	HealthInterval  time.Duration
	ShutdownTimeout time.Duration
	Logger          *zap.Logger
}

// GRPCServer represents a gRPC server
type GRPCServer struct {
	server          *grpc.Server
	config          config.GRPCConfig
	logger          *zap.Logger
	healthServer    *health.Server
	checks          map[string]HealthChecker
	healthInterval  time.Duration
	shutdownTimeout time.Duration
}

// NewGRPCServer creates a new gRPC server instance with all interceptors
func NewGRPCServer(cfg config.GRPCConfig, opts Options) *GRPCServer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	authInterceptor := interceptors.NewAuthInterceptor(opts.Validator, MethodConfirmBooking, MethodGetReceipt)
	loggingInterceptor := interceptors.NewLoggingInterceptor()
	errorHandlerInterceptor := interceptors.NewErrorHandlerInterceptor()
	timeoutInterceptor := interceptors.NewTimeoutInterceptor(cfg.RequestTimeout, map[string]time.Duration{
		MethodSearch: 2 * cfg.RequestTimeout,
	})

	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p interface{}) (err error) {
			logger.Error("gRPC panic recovered", zap.Any("panic", p))
			return status.Errorf(codes.Internal, "internal server error")
		}),
	}

	zapOpts := []grpc_zap.Option{
		grpc_zap.WithLevels(grpc_zap.DefaultCodeToLevel),
		grpc_zap.WithDecider(func(_ string, err error) bool { return err != nil }),
	}

	unaryInterceptors := []grpc.UnaryServerInterceptor{
		grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		grpc_zap.UnaryServerInterceptor(logger, zapOpts...),
		loggingInterceptor.Unary(),
		timeoutInterceptor.Unary(),
		authInterceptor.Unary(),
	}
	if opts.RateLimiter != nil {
		unaryInterceptors = append(unaryInterceptors, ratelimit.UnaryServerInterceptor(opts.RateLimiter))
		logger.Info("Rate limiting interceptor added")
	}
	unaryInterceptors = append(unaryInterceptors, errorHandlerInterceptor.Unary())

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unaryInterceptors...)),
		grpc.StreamInterceptor(grpc_recovery.StreamServerInterceptor(recoveryOpts...)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	// NOT_SERVING until dependencies are healthy
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	if cfg.EnableReflection {
		logger.Info("Registering gRPC reflection")
		reflection.Register(server)
	}

	s := &GRPCServer{
		server:          server,
		config:          cfg,
		logger:          logger,
		healthServer:    healthServer,
		checks:          opts.Checks,
		healthInterval:  opts.HealthInterval,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	if s.healthInterval <= 0 {
		s.healthInterval = 30 * time.Second
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 30 * time.Second
	}
	return s
}

// RegisterService registers a gRPC service with the server
func (s *GRPCServer) RegisterService(desc *grpc.ServiceDesc, impl interface{}) {
	s.server.RegisterService(desc, impl)
}

// RegisterPricingService registers the pricing service implementation
func (s *GRPCServer) RegisterPricingService(impl pricingv1.PricingServiceServer) {
	pricingv1.RegisterPricingServiceServer(s.server, impl)
}

// GetServer returns the underlying gRPC server
func (s *GRPCServer) GetServer() *grpc.Server {
	return s.server
}

// StartHealthMonitoring starts background health checks for dependencies
func (s *GRPCServer) StartHealthMonitoring(ctx context.Context) {
	go s.monitorHealth(ctx)
}

func (s *GRPCServer) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(s.healthInterval)
	defer ticker.Stop()

	s.logger.Info("Starting health monitoring for dependencies", zap.Int("checks", len(s.checks)))
	s.checkDependencies(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Health monitoring stopped")
			return
		case <-ticker.C:
			s.checkDependencies(ctx)
		}
	}
}

// checkDependencies pings every dependency and updates the serving status
func (s *GRPCServer) checkDependencies(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var unhealthy []string
	for _, name := range names {
		if err := s.checks[name].Ping(ctx); err != nil {
			s.logger.Debug("Dependency health check failed", zap.String("dependency", name), zap.Error(err))
			unhealthy = append(unhealthy, name)
		}
	}

	st := healthpb.HealthCheckResponse_SERVING
	if len(unhealthy) > 0 {
		st = healthpb.HealthCheckResponse_NOT_SERVING
		s.logger.Warn("Dependencies unhealthy, setting status to NOT_SERVING",
			zap.Strings("unhealthy", unhealthy))
	}
	s.healthServer.SetServingStatus("", st)
	s.healthServer.SetServingStatus(ServiceName, st)
	return len(unhealthy) == 0
}

// Serve listens on the configured address until ctx is cancelled
func (s *GRPCServer) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address, err)
	}
	return s.ServeListener(ctx, listener)
}

// ServeListener serves on lis and stops gracefully when ctx is cancelled.
// Stop is forced once the shutdown timeout elapses.
func (s *GRPCServer) ServeListener(ctx context.Context, lis net.Listener) error {
	s.logger.Info("gRPC server starting", zap.String("address", lis.Addr().String()))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.server.Serve(lis)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("gRPC server shutting down")
	}

	s.healthServer.Shutdown()

	gracefulStop := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(gracefulStop)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-gracefulStop:
		s.logger.Info("gRPC server stopped gracefully")
	case <-timer.C:
		s.logger.Warn("Graceful shutdown timeout, forcing stop")
		s.server.Stop()
	}
	return nil
}
