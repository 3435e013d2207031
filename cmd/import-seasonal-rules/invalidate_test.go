package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/pricing"
)

func TestInvalidateQuotes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	quotes := cache.NewQuoteCache(cache.NewCacheWithClient(client), time.Hour)
	ctx := context.Background()

	key := func(hotel string) cache.QuoteKey {
		return cache.QuoteKey{
			HotelID:  hotel,
			CheckIn:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
			Rooms:    1,
			Guests:   1,
		}
	}
	for _, hotel := range []string{"hotel-1", "hotel-2", "hotel-3"} {
		quotes.Set(ctx, key(hotel), pricing.Breakdown{HotelID: hotel}, time.Time{})
	}

	rules := []domain.SeasonalRule{
		{ID: "peak", HotelID: "hotel-1"},
		{ID: "xmas", HotelID: "hotel-1"},
		{ID: "summer", HotelID: "hotel-2"},
	}
	require.Equal(t, 2, invalidateQuotes(ctx, quotes, rules, zap.NewNop()))
	assert.False(t, mr.Exists(key("hotel-1").String()))
	assert.False(t, mr.Exists(key("hotel-2").String()))
	assert.True(t, mr.Exists(key("hotel-3").String()))
}
