package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/repository"
)

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Hotels().UpsertRateProfile(context.Background(), domain.HotelRateProfile{
		HotelID:           "hotel-1",
		BasePricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(500)),
		MaxGuestsPerRoom:  2,
		TaxPercentage:     decimal.NewFromInt(15),
		Currency:          "THB",
	}))
	return s
}

func TestSeasonalRules_UpsertKeepsOrderAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	rules := s.SeasonalRules()

	first, err := rules.Upsert(ctx, domain.SeasonalRule{
		ID: "r1", HotelID: "hotel-1",
		StartDate: date("2025-07-01"), EndDate: date("2025-07-31"),
		Adjustment: domain.Multiplier(decimal.RequireFromString("1.2")),
	})
	require.NoError(t, err)
	_, err = rules.Upsert(ctx, domain.SeasonalRule{
		ID: "r2", HotelID: "hotel-1",
		StartDate: date("2025-12-24"), EndDate: date("2025-12-26"),
		Adjustment: domain.OverridePrice(decimal.NewFromInt(900)),
	})
	require.NoError(t, err)

	updated := first
	updated.Adjustment = domain.Multiplier(decimal.RequireFromString("1.3"))
	updated.CreatedAt = time.Time{}
	saved, err := rules.Upsert(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, saved.CreatedAt)

	list, err := rules.ListByHotel(ctx, "hotel-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r1", list[0].ID)
	assert.Equal(t, "multiplier=1.3", list[0].Adjustment.String())
}

func TestSeasonalRules_ListForStay(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	_, err := s.SeasonalRules().BulkUpsert(ctx, []domain.SeasonalRule{
		{ID: "before", HotelID: "hotel-1", StartDate: date("2025-07-01"), EndDate: date("2025-07-09"), Adjustment: domain.OverridePrice(decimal.NewFromInt(1))},
		{ID: "first-night", HotelID: "hotel-1", StartDate: date("2025-07-01"), EndDate: date("2025-07-10"), Adjustment: domain.OverridePrice(decimal.NewFromInt(1))},
		{ID: "checkout-day", HotelID: "hotel-1", StartDate: date("2025-07-13"), EndDate: date("2025-07-20"), Adjustment: domain.OverridePrice(decimal.NewFromInt(1))},
	})
	require.NoError(t, err)

	list, err := s.SeasonalRules().ListForStay(ctx, "hotel-1", date("2025-07-10"), date("2025-07-13"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first-night", list[0].ID)
}

func TestSeasonalRules_BulkUpsertIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	_, err := s.SeasonalRules().BulkUpsert(ctx, []domain.SeasonalRule{
		{ID: "ok", HotelID: "hotel-1", StartDate: date("2025-07-01"), EndDate: date("2025-07-02"), Adjustment: domain.OverridePrice(decimal.NewFromInt(1))},
		{ID: "bad", HotelID: "hotel-1", StartDate: date("2025-07-05"), EndDate: date("2025-07-02"), Adjustment: domain.OverridePrice(decimal.NewFromInt(1))},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := s.SeasonalRules().ListByHotel(ctx, "hotel-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeasonalRules_Delete(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	_, err := s.SeasonalRules().Upsert(ctx, domain.SeasonalRule{
		ID: "r1", HotelID: "hotel-1", StartDate: date("2025-07-01"), EndDate: date("2025-07-02"),
		Adjustment: domain.OverridePrice(decimal.NewFromInt(1)),
	})
	require.NoError(t, err)

	require.NoError(t, s.SeasonalRules().Delete(ctx, "r1"))
	assert.ErrorIs(t, s.SeasonalRules().Delete(ctx, "r1"), domain.ErrNotFound)
}

func TestCoupons_IncrementUsesStopsAtCap(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	maxUses := 2
	require.NoError(t, s.Coupons().Upsert(ctx, domain.Coupon{
		Code:          "summer10",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     date("2025-06-01"),
		ValidTo:       date("2025-08-31"),
		MaxUses:       &maxUses,
		Active:        true,
	}))

	c, err := s.Coupons().IncrementUses(ctx, "SUMMER10")
	require.NoError(t, err)
	assert.Equal(t, 1, c.CurrentUses)
	_, err = s.Coupons().IncrementUses(ctx, "Summer10")
	require.NoError(t, err)

	_, err = s.Coupons().IncrementUses(ctx, "SUMMER10")
	assert.ErrorIs(t, err, repository.ErrCouponExhausted)

	_, err = s.Coupons().IncrementUses(ctx, "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := s.Coupons().GetByCode(ctx, "summer10")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentUses)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	boom := errors.New("boom")
	id := uuid.New()

	err := s.WithTransaction(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Bookings().Create(ctx, &domain.Booking{ID: id, HotelID: "hotel-1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Bookings().GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.WithTransaction(ctx, func(tx repository.Store) error {
		return tx.Bookings().Create(ctx, &domain.Booking{ID: id, HotelID: "hotel-1"})
	})
	require.NoError(t, err)
	b, err := s.Bookings().GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Len(t, s.AllBookings(), 1)
}

func TestWithTransaction_CancelledContextRollsBack(t *testing.T) {
	s := seededStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.New()

	err := s.WithTransaction(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Bookings().Create(ctx, &domain.Booking{ID: id, HotelID: "hotel-1"}))
		cancel()
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Bookings().GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.AllBookings())
}

func TestRuleSetVersionChangesOnEdit(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { tick = tick.Add(time.Second); return tick }

	rule := domain.SeasonalRule{ID: "r1", HotelID: "hotel-1", StartDate: date("2025-07-01"), EndDate: date("2025-07-02"),
		Adjustment: domain.OverridePrice(decimal.NewFromInt(1))}
	_, err := s.SeasonalRules().Upsert(ctx, rule)
	require.NoError(t, err)
	list, _ := s.SeasonalRules().ListByHotel(ctx, "hotel-1")
	before := repository.RuleSetVersion(list)

	rule.Adjustment = domain.OverridePrice(decimal.NewFromInt(2))
	_, err = s.SeasonalRules().Upsert(ctx, rule)
	require.NoError(t, err)
	list, _ = s.SeasonalRules().ListByHotel(ctx, "hotel-1")

	assert.NotEqual(t, before, repository.RuleSetVersion(list))
}

func TestOutbox_PendingSkipsPublishedAndExhausted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Outbox()

	a := &domain.OutboxEvent{EventType: "booking.confirmed", Payload: []byte(`{}`)}
	b := &domain.OutboxEvent{EventType: "coupon.redeemed", Payload: []byte(`{}`)}
	c := &domain.OutboxEvent{EventType: "booking.confirmed", Payload: []byte(`{}`)}
	for _, e := range []*domain.OutboxEvent{a, b, c} {
		require.NoError(t, repo.Insert(ctx, e))
		assert.NotEmpty(t, e.ID)
	}

	require.NoError(t, repo.MarkPublished(ctx, a.ID))
	for i := 0; i < repository.MaxOutboxRetries; i++ {
		require.NoError(t, repo.MarkFailed(ctx, b.ID, "broker down"))
	}

	pending, err := repo.GetPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)

	assert.ErrorIs(t, repo.MarkPublished(ctx, "missing"), domain.ErrNotFound)
}

func TestOutbox_RolledBackWithTransaction(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	err := s.WithTransaction(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Outbox().Insert(ctx, &domain.OutboxEvent{EventType: "booking.confirmed"}))
		return errors.New("boom")
	})
	require.Error(t, err)
	assert.Empty(t, s.OutboxEvents())
}
