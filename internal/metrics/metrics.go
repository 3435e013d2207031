package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// gRPC metrics
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Pricing metrics
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quotes_total",
			Help: "Total number of price quotes by caller and outcome",
		},
		[]string{"caller", "outcome"},
	)

	QuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pricing_quote_duration_seconds",
			Help:    "Time to load inputs and price one stay",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"caller"},
	)

	QuoteTotalAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_quote_total_amount",
			Help:    "Distribution of quoted tax-inclusive totals",
			Buckets: []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
		},
	)

	CouponRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_coupon_rejected_total",
			Help: "Total number of coupons not applied, by reason",
		},
		[]string{"reason"},
	)

	AmbiguousSeasonalRules = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_ambiguous_seasonal_rules_total",
			Help: "Nights covered by two or more rules with the same span",
		},
		[]string{"hotel_id"},
	)

	// Cache metrics
	QuoteCacheHit = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_quote_cache_hit_total",
			Help: "Total number of quote cache hits",
		},
	)

	QuoteCacheMiss = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_quote_cache_miss_total",
			Help: "Total number of quote cache misses",
		},
	)

	// Booking metrics
	BookingsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total number of confirmed bookings",
		},
		[]string{"currency", "coupon_applied"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"type", "status"},
	)

	OutboxBatchSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "outbox_pending_batch_size",
			Help: "Pending outbox events picked up by the last relay cycle",
		},
	)

	// Database metrics
	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors",
		},
		[]string{"type", "component"},
	)
)

// RecordHTTPRequest records an HTTP request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordGRPCRequest records a gRPC request
func RecordGRPCRequest(method, status string, duration time.Duration) {
	GRPCRequestsTotal.WithLabelValues(method, status).Inc()
	GRPCRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordQuote records one pricing request
func RecordQuote(caller, outcome string, duration time.Duration) {
	QuotesTotal.WithLabelValues(caller, outcome).Inc()
	QuoteDuration.WithLabelValues(caller).Observe(duration.Seconds())
}

// RecordQuoteTotal records a quoted total amount
func RecordQuoteTotal(total float64) {
	QuoteTotalAmount.Observe(total)
}

// RecordCouponRejected records a coupon that was supplied but not applied
func RecordCouponRejected(reason string) {
	CouponRejected.WithLabelValues(reason).Inc()
}

// RecordAmbiguousSeasonalRule records a night with equally tight overlapping rules
func RecordAmbiguousSeasonalRule(hotelID string) {
	AmbiguousSeasonalRules.WithLabelValues(hotelID).Inc()
}

// RecordQuoteCacheHit records a quote cache hit
func RecordQuoteCacheHit() {
	QuoteCacheHit.Inc()
}

// RecordQuoteCacheMiss records a quote cache miss
func RecordQuoteCacheMiss() {
	QuoteCacheMiss.Inc()
}

// RecordBookingConfirmed records a confirmed booking
func RecordBookingConfirmed(currency string, couponApplied bool) {
	applied := "false"
	if couponApplied {
		applied = "true"
	}
	BookingsConfirmed.WithLabelValues(currency, applied).Inc()
}

// RecordEventPublished records a domain event publish attempt
func RecordEventPublished(eventType, status string) {
	EventsPublished.WithLabelValues(eventType, status).Inc()
}

// RecordOutboxBatch records how many pending events a relay cycle picked up
func RecordOutboxBatch(n int) {
	OutboxBatchSize.Set(float64(n))
}

// RecordDatabaseQuery records a database query
func RecordDatabaseQuery(operation string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordError records an error
func RecordError(errorType, component string) {
	ErrorsTotal.WithLabelValues(errorType, component).Inc()
}
