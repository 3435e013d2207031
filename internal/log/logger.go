package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Context keys for request-scoped fields
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	GuestIDKey   contextKey = "guest_id"
	HotelIDKey   contextKey = "hotel_id"
	TraceIDKey   contextKey = "trace_id"
)

var (
	// globalLogger is the default logger instance
	globalLogger *zap.Logger
)

// Init initializes the global logger with the specified level
func Init(level string) error {
	logger, err := NewProduction(level)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// NewProduction creates a JSON logger with the specified level
func NewProduction(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(logLevel)

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.Encoding = "json"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	return config.Build()
}

// NewDevelopment creates a console logger for local runs
func NewDevelopment() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := config.Build()
	return logger
}

// L returns the global logger with request-scoped fields from context
func L(ctx context.Context) *zap.Logger {
	if globalLogger == nil {
		// Fallback to a basic production logger if not initialized
		logger, _ := zap.NewProduction()
		globalLogger = logger
	}
	return With(ctx, globalLogger)
}

// With enriches logger with the request-scoped fields found in ctx
func With(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if ctx == nil {
		return logger
	}
	for _, key := range []contextKey{RequestIDKey, GuestIDKey, HotelIDKey, TraceIDKey} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			logger = logger.With(zap.String(string(key), v))
		}
	}
	return logger
}

// WithRequestID adds request_id to the context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithGuestID adds guest_id to the context for logging
func WithGuestID(ctx context.Context, guestID string) context.Context {
	return context.WithValue(ctx, GuestIDKey, guestID)
}

// WithHotelID adds hotel_id to the context for logging
func WithHotelID(ctx context.Context, hotelID string) context.Context {
	return context.WithValue(ctx, HotelIDKey, hotelID)
}

// WithTraceID adds trace_id to the context for logging
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GuestID returns the authenticated guest id stored in ctx, if any
func GuestID(ctx context.Context) string {
	v, _ := ctx.Value(GuestIDKey).(string)
	return v
}

// Info logs an info message with context
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	L(ctx).Info(msg, fields...)
}

// Error logs an error message with context
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	L(ctx).Error(msg, fields...)
}

// Warn logs a warning message with context
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	L(ctx).Warn(msg, fields...)
}

// Debug logs a debug message with context
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	L(ctx).Debug(msg, fields...)
}
