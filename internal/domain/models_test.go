package domain

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	late := time.Date(2025, 7, 10, 23, 30, 0, 0, bangkok)

	assert.Equal(t, date(2025, 7, 10), DateOf(late))
	assert.Equal(t, 3, DaysBetween(late, date(2025, 7, 13)))
}

func TestNewStay(t *testing.T) {
	tests := []struct {
		name    string
		in, out time.Time
		rooms   int
		guests  int
		wantErr error
		wantNts int
	}{
		{name: "valid", in: date(2025, 7, 10), out: date(2025, 7, 13), rooms: 1, guests: 2, wantNts: 3},
		{name: "same day", in: date(2025, 7, 10), out: date(2025, 7, 10), rooms: 1, guests: 2, wantErr: ErrInvalidDateRange},
		{name: "reversed", in: date(2025, 7, 10), out: date(2025, 7, 9), rooms: 1, guests: 2, wantErr: ErrInvalidDateRange},
		{name: "missing date", out: date(2025, 7, 9), rooms: 1, guests: 2, wantErr: ErrInvalidDateRange},
		{name: "no rooms", in: date(2025, 7, 10), out: date(2025, 7, 11), rooms: 0, guests: 2, wantErr: ErrInvalidOccupancy},
		{name: "at the limits", in: date(2025, 7, 10), out: date(2025, 7, 11), rooms: MaxRooms, guests: MaxGuests, wantNts: 1},
		{name: "too many rooms", in: date(2025, 7, 10), out: date(2025, 7, 11), rooms: MaxRooms + 1, guests: 2, wantErr: ErrInvalidOccupancy},
		{name: "too many guests", in: date(2025, 7, 10), out: date(2025, 7, 11), rooms: 1, guests: MaxGuests + 1, wantErr: ErrInvalidOccupancy},
		{name: "huge rooms value", in: date(2025, 7, 10), out: date(2025, 7, 11), rooms: math.MaxInt, guests: 2, wantErr: ErrInvalidOccupancy},
		{name: "date range checked first", in: date(2025, 7, 10), out: date(2025, 7, 10), rooms: 0, guests: 0, wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := NewStay(tt.in, tt.out, tt.rooms, tt.guests)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNts, stay.Nights())
		})
	}
}

func TestHotelRateProfile_Validate(t *testing.T) {
	p := HotelRateProfile{
		HotelID:          "hotel-1",
		MaxGuestsPerRoom: 2,
	}
	err := p.Validate()
	require.ErrorIs(t, err, ErrMissingRateProfile)
	assert.True(t, IsFatalPricingError(err))

	p.BasePricePerNight = decimal.NewNullDecimal(decimal.NewFromInt(500))
	assert.NoError(t, p.Validate())

	p.MaxGuestsPerRoom = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidInput)

	p.MaxGuestsPerRoom = MaxGuestsPerRoomCap + 1
	assert.ErrorIs(t, p.Validate(), ErrInvalidInput)
}

func TestNewAdjustment(t *testing.T) {
	price := decimal.NewNullDecimal(decimal.NewFromInt(800))
	factor := decimal.NewNullDecimal(decimal.RequireFromString("1.2"))

	adj, err := NewAdjustment(price, decimal.NullDecimal{})
	require.NoError(t, err)
	assert.Equal(t, AdjustmentOverridePrice, adj.Kind())
	override, multiplier := adj.Columns()
	assert.True(t, override.Valid)
	assert.False(t, multiplier.Valid)

	adj, err = NewAdjustment(decimal.NullDecimal{}, factor)
	require.NoError(t, err)
	assert.Equal(t, AdjustmentMultiplier, adj.Kind())
	assert.Equal(t, "multiplier=1.2", adj.String())

	_, err = NewAdjustment(price, factor)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewAdjustment(decimal.NullDecimal{}, decimal.NullDecimal{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeasonalRule_Validate(t *testing.T) {
	rule := SeasonalRule{
		ID:         "r1",
		HotelID:    "hotel-1",
		StartDate:  time.Date(2025, 12, 20, 15, 0, 0, 0, time.UTC),
		EndDate:    date(2025, 12, 31),
		Adjustment: OverridePrice(decimal.NewFromInt(900)),
	}
	require.NoError(t, rule.Validate())
	assert.Equal(t, date(2025, 12, 20), rule.StartDate)
	assert.Equal(t, 11, rule.SpanDays())
	assert.True(t, rule.Covers(date(2025, 12, 31)))
	assert.False(t, rule.Covers(date(2026, 1, 1)))

	inverted := rule
	inverted.EndDate = date(2025, 12, 1)
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidInput)

	empty := rule
	empty.Adjustment = Adjustment{}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidInput)
}

func TestCoupon_Validate(t *testing.T) {
	maxUses := 5
	c := Coupon{
		Code:          "  summer10 ",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     date(2025, 6, 1),
		ValidTo:       date(2025, 8, 31),
		MaxUses:       &maxUses,
		CurrentUses:   5,
		Active:        true,
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, "SUMMER10", c.Code)
	assert.True(t, c.Exhausted())

	c.DiscountValue = decimal.NewFromInt(101)
	assert.ErrorIs(t, c.Validate(), ErrInvalidInput)

	c.DiscountType = DiscountTypeFixed
	assert.NoError(t, c.Validate())

	c.MaxUses = nil
	assert.False(t, c.Exhausted())
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "฿", CurrencySymbol("thb"))
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "CHF", CurrencySymbol("CHF"))
}

func TestDomainError_Is(t *testing.T) {
	err := NewNotFoundError("booking", "abc")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	de := GetDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, ErrCodeNotFound, de.Code)
	assert.Nil(t, GetDomainError(nil))
}
