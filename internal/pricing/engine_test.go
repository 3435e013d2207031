package pricing

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/staylane/pricingservice/internal/domain"
)

func threeNightInput(t *testing.T) Input {
	return Input{
		HotelID: "hotel-1",
		Stay: domain.Stay{
			CheckIn:  day(t, "2025-07-10"),
			CheckOut: day(t, "2025-07-13"),
			Rooms:    1,
			Guests:   2,
		},
		Profile: profile("500", 2, "50", "15"),
		Now:     couponNow,
	}
}

func amountsOf(b Breakdown) []string {
	out := []string{}
	for _, a := range b.PerNightAmounts() {
		out = append(out, a.StringFixed(2))
	}
	return out
}

func TestQuote_BaseRateOnly(t *testing.T) {
	b, err := NewEngine(nil).Quote(context.Background(), threeNightInput(t))
	require.NoError(t, err)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, []string{"500.00", "500.00", "500.00"}, amountsOf(b))
	requireAmount(t, "1500.00", b.SubtotalBeforeExtras)
	requireAmount(t, "0.00", b.ExtraGuestCharge)
	requireAmount(t, "1500.00", b.NetAmount)
	requireAmount(t, "225.00", b.TaxAmount)
	requireAmount(t, "1725.00", b.TotalAmount)
	assert.Equal(t, "THB", b.Currency)
}

func TestQuote_OverrideOnSecondNight(t *testing.T) {
	in := threeNightInput(t)
	in.Rules = []domain.SeasonalRule{
		overrideRule(t, "peak", "2025-07-11", "2025-07-11", "800", time.Now()),
	}

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"500.00", "800.00", "500.00"}, amountsOf(b))
	requireAmount(t, "1800.00", b.SubtotalBeforeExtras)
	requireAmount(t, "2070.00", b.TotalAmount)
	assert.Equal(t, "peak", b.NightLines()[1].RuleID)
	assert.Empty(t, b.NightLines()[0].RuleID)
}

func TestQuote_MultiplierRoundsPerNight(t *testing.T) {
	in := threeNightInput(t)
	in.Profile = profile("333.33", 2, "0", "0")
	in.Rules = []domain.SeasonalRule{
		multiplierRule(t, "hi", "2025-07-01", "2025-07-31", "1.15", time.Now()),
	}

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	// 333.33 * 1.15 = 383.3295
	assert.Equal(t, []string{"383.33", "383.33", "383.33"}, amountsOf(b))
	requireAmount(t, "1149.99", b.SubtotalBeforeExtras)
}

func TestQuote_ExtraGuests(t *testing.T) {
	in := threeNightInput(t)
	in.Stay.Guests = 4
	in.Rules = []domain.SeasonalRule{
		multiplierRule(t, "x2", "2025-07-10", "2025-07-12", "2", time.Now()),
	}

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	requireAmount(t, "300.00", b.ExtraGuestCharge)
	requireAmount(t, "3000.00", b.SubtotalBeforeExtras)
	requireAmount(t, "3300.00", b.SubtotalBeforeDiscount)
}

func TestQuote_ExtraGuestsAcrossRooms(t *testing.T) {
	assert.Equal(t, 0, ExtraGuests(4, 2, 2))
	assert.Equal(t, 1, ExtraGuests(5, 2, 2))
	requireAmount(t, "0.00", ExtraGuestCharge(1, 3, 2, amount("50"), 3))
}

func TestQuote_CouponApplied(t *testing.T) {
	in := threeNightInput(t)
	in.CouponCode = "summer10"
	in.Coupon = summer10()

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, b.CouponApplied)
	assert.Equal(t, "SUMMER10", b.CouponCode)
	requireAmount(t, "150.00", b.DiscountAmount)
	requireAmount(t, "1350.00", b.NetAmount)
	requireAmount(t, "202.50", b.TaxAmount)
	requireAmount(t, "1552.50", b.TotalAmount)
	assert.NoError(t, b.CouponErr())
}

func TestQuote_CouponBelowMinimumFallsBackToFullPrice(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	in := threeNightInput(t)
	in.Profile = profile("300", 2, "0", "15")
	in.CouponCode = "SUMMER10"
	in.Coupon = summer10()

	b, err := NewEngine(zap.New(core)).Quote(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, b.CouponApplied)
	assert.Equal(t, RejectionMinAmountNotMet, b.CouponRejection)
	assert.ErrorIs(t, b.CouponErr(), domain.ErrInvalidCoupon)
	requireAmount(t, "900.00", b.SubtotalBeforeDiscount)
	requireAmount(t, "0.00", b.DiscountAmount)
	requireAmount(t, "900.00", b.NetAmount)
	requireAmount(t, "1035.00", b.TotalAmount)
	assert.Equal(t, 1, logs.FilterMessage("Coupon not applied").Len())
}

func TestQuote_UnknownCouponCode(t *testing.T) {
	in := threeNightInput(t)
	in.CouponCode = "NOPE"

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, RejectionNotFound, b.CouponRejection)
	requireAmount(t, "1725.00", b.TotalAmount)
}

func TestQuote_FatalErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *Input)
		want   error
	}{
		{
			name:   "zero nights",
			mutate: func(in *Input) { in.Stay.CheckOut = in.Stay.CheckIn },
			want:   domain.ErrInvalidDateRange,
		},
		{
			name:   "checkout before checkin",
			mutate: func(in *Input) { in.Stay.CheckOut = in.Stay.CheckIn.AddDate(0, 0, -2) },
			want:   domain.ErrInvalidDateRange,
		},
		{
			name:   "no rooms",
			mutate: func(in *Input) { in.Stay.Rooms = 0 },
			want:   domain.ErrInvalidOccupancy,
		},
		{
			name:   "no guests",
			mutate: func(in *Input) { in.Stay.Guests = 0 },
			want:   domain.ErrInvalidOccupancy,
		},
		{
			name:   "rooms large enough to overflow capacity",
			mutate: func(in *Input) { in.Stay.Rooms = math.MaxInt/2 + 1 },
			want:   domain.ErrInvalidOccupancy,
		},
		{
			name:   "missing base price",
			mutate: func(in *Input) { in.Profile.BasePricePerNight = decimal.NullDecimal{} },
			want:   domain.ErrMissingRateProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := threeNightInput(t)
			tt.mutate(&in)

			b, err := NewEngine(nil).Quote(context.Background(), in)

			require.ErrorIs(t, err, tt.want)
			assert.True(t, domain.IsFatalPricingError(err))
			assert.Equal(t, 0, b.Nights)
			assert.True(t, b.TotalAmount.IsZero())
		})
	}
}

func TestQuote_LogsAmbiguousRules(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := threeNightInput(t)
	in.Rules = []domain.SeasonalRule{
		overrideRule(t, "a", "2025-07-10", "2025-07-10", "700", created),
		overrideRule(t, "b", "2025-07-10", "2025-07-10", "750", created.Add(time.Minute)),
	}

	b, err := NewEngine(zap.New(core)).Quote(context.Background(), in)
	require.NoError(t, err)

	requireAmount(t, "750.00", b.PerNightAmounts()[0])
	assert.Equal(t, 1, logs.Len())
}

func TestQuote_Idempotent(t *testing.T) {
	in := threeNightInput(t)
	in.Stay.Guests = 5
	in.CouponCode = "SUMMER10"
	in.Coupon = summer10()
	in.Rules = []domain.SeasonalRule{
		multiplierRule(t, "m", "2025-07-11", "2025-07-20", "1.333", time.Now()),
	}
	engine := NewEngine(nil)

	first, err := engine.Quote(context.Background(), in)
	require.NoError(t, err)
	second, err := engine.Quote(context.Background(), in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestQuote_MonotonicInNights(t *testing.T) {
	engine := NewEngine(nil)
	in := threeNightInput(t)
	in.Profile = profile("123.45", 2, "0", "7")

	prev := decimal.Zero
	for n := 1; n <= 30; n++ {
		in.Stay.CheckOut = in.Stay.CheckIn.AddDate(0, 0, n)
		b, err := engine.Quote(context.Background(), in)
		require.NoError(t, err)

		assert.True(t, b.SubtotalBeforeExtras.GreaterThan(prev), "nights=%d", n)
		requireAmount(t, amount("123.45").Mul(decimal.NewFromInt(int64(n))).StringFixed(2), b.SubtotalBeforeExtras)
		prev = b.SubtotalBeforeExtras
	}
}

func TestBreakdown_JSONUsesFixedDecimals(t *testing.T) {
	in := threeNightInput(t)
	in.CouponCode = "SUMMER10"
	in.Coupon = summer10()

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "1552.50", wire["total_amount"])
	assert.Equal(t, "150.00", wire["discount_amount"])
	assert.Equal(t, []any{"500.00", "500.00", "500.00"}, wire["per_night_amounts"])
	assert.Equal(t, "2025-07-10", wire["check_in"])

	var restored Breakdown
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.True(t, restored.TotalAmount.Equal(b.TotalAmount))
	assert.Equal(t, amountsOf(b), amountsOf(restored))
}

func TestBreakdown_JSONKeepsTaxRatePrecision(t *testing.T) {
	in := threeNightInput(t)
	in.Profile.TaxPercentage = decimal.RequireFromString("7.125")

	b, err := NewEngine(nil).Quote(context.Background(), in)
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "7.125", wire["tax_percentage"])

	var restored Breakdown
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.True(t, restored.TaxPercentage.Equal(b.TaxPercentage))
	assert.True(t, ApplyTax(restored.NetAmount, restored.TaxPercentage).TaxAmount.Equal(restored.TaxAmount))
}

func TestBreakdown_AccessorsReturnCopies(t *testing.T) {
	b, err := NewEngine(nil).Quote(context.Background(), threeNightInput(t))
	require.NoError(t, err)

	amounts := b.PerNightAmounts()
	amounts[0] = amount("1")
	lines := b.NightLines()
	lines[0].Amount = amount("1")

	requireAmount(t, "500.00", b.PerNightAmounts()[0])
	requireAmount(t, "500.00", b.NightLines()[0].Amount)
}
