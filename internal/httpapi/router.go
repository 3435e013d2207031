package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/auth"
	"github.com/staylane/pricingservice/internal/ratelimit"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	AllowedOrigins []string
	Validator      auth.Validator
	RateLimiter    ratelimit.RateLimiter
	Logger         *zap.Logger
}

// NewRouter builds the REST API
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestContext(), accessLog(logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = opts.AllowedOrigins
	if len(opts.AllowedOrigins) == 0 || (len(opts.AllowedOrigins) == 1 && opts.AllowedOrigins[0] == "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", RequestIDHeader)
	corsCfg.ExposeHeaders = []string{RequestIDHeader}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", h.health)

	limited := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if opts.RateLimiter == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{rateLimit(opts.RateLimiter, logger)}, handlers...)
	}
	guest := requireGuest(opts.Validator)

	v1 := r.Group("/api/v1")
	v1.POST("/quotes", limited(h.quote)...)
	v1.POST("/search", limited(h.search)...)
	v1.POST("/bookings", append([]gin.HandlerFunc{guest}, limited(h.confirm)...)...)
	v1.GET("/bookings/:id/receipt", guest, h.receipt)

	return r
}
