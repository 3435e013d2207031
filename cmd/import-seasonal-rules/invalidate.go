package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/domain"
)

// invalidateQuotes drops the cached quotes of every hotel touched by rules and
// returns how many hotels were cleared. A failed hotel is logged and skipped.
func invalidateQuotes(ctx context.Context, quotes *cache.QuoteCache, rules []domain.SeasonalRule, logger *zap.Logger) int {
	seen := make(map[string]struct{})
	cleared := 0
	for _, r := range rules {
		if _, ok := seen[r.HotelID]; ok {
			continue
		}
		seen[r.HotelID] = struct{}{}
		if err := quotes.InvalidateHotel(ctx, r.HotelID); err != nil {
			logger.Warn("Failed to invalidate cached quotes", zap.String("hotel_id", r.HotelID), zap.Error(err))
			continue
		}
		cleared++
	}
	return cleared
}
