package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/pricing"
)

const quoteKeyPrefix = "quote:v1:"

// QuoteKey identifies a cached quote. Every input that can change the price is
// part of the key, including versions of the hotel's rules and the coupon.
type QuoteKey struct {
	HotelID        string
	CheckIn        time.Time
	CheckOut       time.Time
	Rooms          int
	Guests         int
	CouponCode     string
	ProfileVersion string
	RuleSetVersion string
	CouponVersion  string
}

// String renders the Redis key
func (k QuoteKey) String() string {
	coupon := domain.NormalizeCouponCode(k.CouponCode)
	if coupon == "" {
		coupon = "-"
	}
	return fmt.Sprintf("%s:%s:%s:%d:%d:%s:%s:%s:%s",
		HotelPrefix(k.HotelID),
		k.CheckIn.Format(domain.DateLayout),
		k.CheckOut.Format(domain.DateLayout),
		k.Rooms,
		k.Guests,
		coupon,
		k.ProfileVersion,
		k.RuleSetVersion,
		k.CouponVersion,
	)
}

// HotelPrefix is the key prefix shared by all quotes for a hotel. The id is
// query-escaped so it never contains the ':' separator.
func HotelPrefix(hotelID string) string {
	return quoteKeyPrefix + url.QueryEscape(hotelID)
}

// QuoteCache stores computed breakdowns in Redis
type QuoteCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewQuoteCache creates a quote cache with the given default TTL
func NewQuoteCache(cache *Cache, ttl time.Duration) *QuoteCache {
	return &QuoteCache{cache: cache, ttl: ttl}
}

// Get returns a cached breakdown. Redis failures are logged and reported as a miss.
func (q *QuoteCache) Get(ctx context.Context, key QuoteKey) (pricing.Breakdown, bool) {
	var b pricing.Breakdown
	err := q.cache.Get(ctx, key.String(), &b)
	switch {
	case err == nil:
		metrics.RecordQuoteCacheHit()
		return b, true
	case errors.Is(err, ErrCacheMiss):
	default:
		log.Warn(ctx, "Quote cache read failed", zap.String("hotel_id", key.HotelID), zap.Error(err))
		metrics.RecordError("cache_read", "quote_cache")
	}
	metrics.RecordQuoteCacheMiss()
	return pricing.Breakdown{}, false
}

// Set caches a breakdown. A non-zero notAfter shortens the TTL so a quote never
// outlives the coupon validity window it was priced under.
func (q *QuoteCache) Set(ctx context.Context, key QuoteKey, b pricing.Breakdown, notAfter time.Time) {
	ttl := q.ttl
	if !notAfter.IsZero() {
		if until := time.Until(notAfter); until < ttl {
			ttl = until
		}
	}
	if ttl <= 0 {
		return
	}
	if err := q.cache.Set(ctx, key.String(), b, ttl); err != nil {
		log.Warn(ctx, "Quote cache write failed", zap.String("hotel_id", key.HotelID), zap.Error(err))
		metrics.RecordError("cache_write", "quote_cache")
	}
}

// InvalidateHotel drops every cached quote for a hotel
func (q *QuoteCache) InvalidateHotel(ctx context.Context, hotelID string) error {
	_, err := q.cache.DeletePrefix(ctx, HotelPrefix(hotelID)+":")
	return err
}
