package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/staylane/pricingservice/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Equal(t, want, got.StringFixed(2))
}

func profile(base string, maxGuests int, extra, tax string) domain.HotelRateProfile {
	return domain.HotelRateProfile{
		HotelID:                 "hotel-1",
		BasePricePerNight:       decimal.NewNullDecimal(amount(base)),
		MaxGuestsPerRoom:        maxGuests,
		ExtraGuestPricePerNight: amount(extra),
		TaxPercentage:           amount(tax),
		Currency:                "THB",
	}
}

func overrideRule(t *testing.T, id, start, end, price string, created time.Time) domain.SeasonalRule {
	t.Helper()
	return domain.SeasonalRule{
		ID:         id,
		HotelID:    "hotel-1",
		StartDate:  day(t, start),
		EndDate:    day(t, end),
		Adjustment: domain.OverridePrice(amount(price)),
		CreatedAt:  created,
	}
}

func multiplierRule(t *testing.T, id, start, end, factor string, created time.Time) domain.SeasonalRule {
	t.Helper()
	return domain.SeasonalRule{
		ID:         id,
		HotelID:    "hotel-1",
		StartDate:  day(t, start),
		EndDate:    day(t, end),
		Adjustment: domain.Multiplier(amount(factor)),
		CreatedAt:  created,
	}
}
