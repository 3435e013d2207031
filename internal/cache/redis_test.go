package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/pricing"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheWithClient(client), mr
}

func sampleKey() QuoteKey {
	return QuoteKey{
		HotelID:        "hotel-1",
		CheckIn:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		Rooms:          1,
		Guests:         2,
		CouponCode:     " summer10",
		ProfileVersion: "p1",
		RuleSetVersion: "2-100",
		CouponVersion:  "3-200",
	}
}

func sampleBreakdown(t *testing.T) pricing.Breakdown {
	t.Helper()
	b, err := pricing.NewEngine(nil).Quote(context.Background(), pricing.Input{
		HotelID: "hotel-1",
		Stay: domain.Stay{
			CheckIn:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			Rooms:    1,
			Guests:   2,
		},
		Profile: domain.HotelRateProfile{
			BasePricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(500)),
			MaxGuestsPerRoom:  2,
			TaxPercentage:     decimal.NewFromInt(15),
			Currency:          "THB",
		},
	})
	require.NoError(t, err)
	return b
}

func TestQuoteKey_String(t *testing.T) {
	k := sampleKey()
	assert.Equal(t, "quote:v1:hotel-1:2025-07-10:2025-07-13:1:2:SUMMER10:p1:2-100:3-200", k.String())

	k.CouponCode = ""
	assert.Contains(t, k.String(), ":2:-:")

	other := sampleKey()
	other.RuleSetVersion = "3-100"
	assert.NotEqual(t, sampleKey().String(), other.String())
}

func TestHotelPrefix_DistinctHotelsNeverShareAPrefix(t *testing.T) {
	assert.NotEqual(t, HotelPrefix("a:b"), HotelPrefix("a_b"))
	assert.NotEqual(t, HotelPrefix("a%3Ab"), HotelPrefix("a:b"))
	assert.NotContains(t, HotelPrefix("a:b"), "a:b")
	assert.False(t, strings.HasPrefix(HotelPrefix("a:b")+":", HotelPrefix("a")+":"))
}

func TestQuoteCache_InvalidateHotelLeavesLookalikeIDs(t *testing.T) {
	c, mr := newTestCache(t)
	q := NewQuoteCache(c, time.Minute)
	ctx := context.Background()

	plain := sampleKey()
	plain.HotelID = "a"
	colon := sampleKey()
	colon.HotelID = "a:b"
	underscore := sampleKey()
	underscore.HotelID = "a_b"
	for _, k := range []QuoteKey{plain, colon, underscore} {
		q.Set(ctx, k, sampleBreakdown(t), time.Time{})
	}

	require.NoError(t, q.InvalidateHotel(ctx, "a"))
	assert.False(t, mr.Exists(plain.String()))
	assert.True(t, mr.Exists(colon.String()))
	assert.True(t, mr.Exists(underscore.String()))

	require.NoError(t, q.InvalidateHotel(ctx, "a:b"))
	assert.False(t, mr.Exists(colon.String()))
	assert.True(t, mr.Exists(underscore.String()))
}

func TestQuoteCache_KeepsThreeDecimalTaxRate(t *testing.T) {
	c, _ := newTestCache(t)
	q := NewQuoteCache(c, time.Minute)
	ctx := context.Background()

	b, err := pricing.NewEngine(nil).Quote(ctx, pricing.Input{
		HotelID: "hotel-1",
		Stay: domain.Stay{
			CheckIn:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			Rooms:    1,
			Guests:   1,
		},
		Profile: domain.HotelRateProfile{
			BasePricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(500)),
			MaxGuestsPerRoom:  2,
			TaxPercentage:     decimal.RequireFromString("7.125"),
			Currency:          "THB",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "106.88", b.TaxAmount.StringFixed(2))

	q.Set(ctx, sampleKey(), b, time.Time{})
	got, ok := q.Get(ctx, sampleKey())
	require.True(t, ok)
	assert.Equal(t, "7.125", got.TaxPercentage.String())
	assert.True(t, got.TaxPercentage.Equal(b.TaxPercentage))
	assert.Equal(t, b.TaxAmount.StringFixed(2), got.TaxAmount.StringFixed(2))
	assert.Equal(t, b.TotalAmount.StringFixed(2), got.TotalAmount.StringFixed(2))
}

func TestCache_GetMiss(t *testing.T) {
	c, _ := newTestCache(t)
	var v map[string]string
	assert.ErrorIs(t, c.Get(context.Background(), "missing", &v), ErrCacheMiss)
}

func TestQuoteCache_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	q := NewQuoteCache(c, time.Minute)
	ctx := context.Background()
	b := sampleBreakdown(t)

	_, ok := q.Get(ctx, sampleKey())
	require.False(t, ok)

	q.Set(ctx, sampleKey(), b, time.Time{})
	got, ok := q.Get(ctx, sampleKey())
	require.True(t, ok)
	assert.Equal(t, "1725.00", got.TotalAmount.StringFixed(2))
	assert.Len(t, got.PerNightAmounts(), 3)

	mr.FastForward(2 * time.Minute)
	_, ok = q.Get(ctx, sampleKey())
	assert.False(t, ok)
}

func TestQuoteCache_TTLCappedByNotAfter(t *testing.T) {
	c, mr := newTestCache(t)
	q := NewQuoteCache(c, time.Hour)
	ctx := context.Background()

	q.Set(ctx, sampleKey(), sampleBreakdown(t), time.Now().Add(10*time.Second))
	ttl := mr.TTL(sampleKey().String())
	assert.LessOrEqual(t, ttl, 10*time.Second)
	assert.Greater(t, ttl, time.Duration(0))

	expired := sampleKey()
	expired.Guests = 3
	q.Set(ctx, expired, sampleBreakdown(t), time.Now().Add(-time.Second))
	assert.False(t, mr.Exists(expired.String()))
}

func TestQuoteCache_InvalidateHotel(t *testing.T) {
	c, mr := newTestCache(t)
	q := NewQuoteCache(c, time.Minute)
	ctx := context.Background()

	k1 := sampleKey()
	k2 := sampleKey()
	k2.Guests = 4
	k3 := sampleKey()
	k3.HotelID = "hotel-10"
	for _, k := range []QuoteKey{k1, k2, k3} {
		q.Set(ctx, k, sampleBreakdown(t), time.Time{})
	}

	require.NoError(t, q.InvalidateHotel(ctx, "hotel-1"))
	assert.False(t, mr.Exists(k1.String()))
	assert.False(t, mr.Exists(k2.String()))
	assert.True(t, mr.Exists(k3.String()))
}

func TestQuoteCache_RedisDownIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	q := NewQuoteCache(c, time.Minute)
	mr.Close()

	_, ok := q.Get(context.Background(), sampleKey())
	assert.False(t, ok)
	q.Set(context.Background(), sampleKey(), sampleBreakdown(t), time.Time{})
}
