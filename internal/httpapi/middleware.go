package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/auth"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/ratelimit"
	"github.com/staylane/pricingservice/internal/tracing"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// requestContext assigns a request id and attaches it, plus the trace id,
// to the request context for logging.
func requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := log.WithRequestID(c.Request.Context(), requestID)
		ctx, span := tracing.StartSpan(ctx, "http "+c.Request.Method+" "+c.FullPath())
		defer span.End()
		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			ctx = log.WithTraceID(ctx, traceID)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// accessLog logs and records metrics for every request
func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(status), duration)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}
		l := log.With(c.Request.Context(), logger)
		switch {
		case status >= http.StatusInternalServerError:
			l.Error("HTTP request failed", fields...)
		case status >= http.StatusBadRequest:
			l.Warn("HTTP request rejected", fields...)
		default:
			l.Info("HTTP request completed", fields...)
		}
	}
}

// requireGuest validates the bearer token and stores the guest id on the
// request context.
func requireGuest(validator auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromAuthHeader(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, domain.NewUnauthorizedError("authorization token is not provided"))
			return
		}
		guestID, err := validator.Validate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Request = c.Request.WithContext(log.WithGuestID(c.Request.Context(), guestID))
		c.Next()
	}
}

// rateLimit rejects callers over their per-minute budget. Limiter failures
// let the request through.
func rateLimit(limiter ratelimit.RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := ratelimit.ClientKey(ctx, c.ClientIP()) + ":" + c.FullPath()
		allowed, err := limiter.Allow(ctx, key)
		if err != nil {
			log.With(ctx, logger).Warn("Rate limit check failed, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": gin.H{
				"code":    "RATE_LIMITED",
				"message": "rate limit exceeded",
			}})
			return
		}
		c.Next()
	}
}
