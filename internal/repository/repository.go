package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staylane/pricingservice/internal/domain"
)

// ErrCouponExhausted is returned by IncrementUses when the coupon has no uses left
// or was deactivated after it was quoted.
var ErrCouponExhausted = errors.New("coupon usage limit reached")

// HotelRepository defines the interface for hotel rate profile operations
type HotelRepository interface {
	// GetRateProfile returns the profile for a hotel. A hotel without a base
	// price is returned with BasePricePerNight unset, not as an error.
	GetRateProfile(ctx context.Context, hotelID string) (domain.HotelRateProfile, error)

	// UpsertRateProfile creates or replaces a hotel's rate settings
	UpsertRateProfile(ctx context.Context, profile domain.HotelRateProfile) error
}

// SeasonalRuleRepository defines the interface for seasonal rule operations
type SeasonalRuleRepository interface {
	// ListByHotel returns every rule of a hotel
	ListByHotel(ctx context.Context, hotelID string) ([]domain.SeasonalRule, error)

	// ListForStay returns the hotel's rules that cover at least one night in [checkIn, checkOut)
	ListForStay(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]domain.SeasonalRule, error)

	Upsert(ctx context.Context, rule domain.SeasonalRule) (domain.SeasonalRule, error)

	// BulkUpsert writes all rules atomically and returns how many were written
	BulkUpsert(ctx context.Context, rules []domain.SeasonalRule) (int, error)

	Delete(ctx context.Context, id string) error
}

// CouponRepository defines the interface for coupon operations
type CouponRepository interface {
	// GetByCode looks a coupon up case-insensitively
	GetByCode(ctx context.Context, code string) (domain.Coupon, error)

	Upsert(ctx context.Context, coupon domain.Coupon) error

	// IncrementUses consumes one use. It fails with ErrCouponExhausted when
	// the cap is reached or the coupon is inactive.
	IncrementUses(ctx context.Context, code string) (domain.Coupon, error)
}

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// MaxOutboxRetries is how many failed relays an outbox event gets before
// GetPending stops returning it.
const MaxOutboxRetries = 10

// OutboxRepository defines the interface for transactional outbox operations
type OutboxRepository interface {
	Insert(ctx context.Context, event *domain.OutboxEvent) error

	// GetPending returns unpublished events below MaxOutboxRetries, oldest first
	GetPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error)

	MarkPublished(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, errorMessage string) error
}

// Store groups the repositories that share one database
type Store interface {
	Hotels() HotelRepository
	SeasonalRules() SeasonalRuleRepository
	Coupons() CouponRepository
	Bookings() BookingRepository
	Outbox() OutboxRepository
}

// TransactionManager manages database transactions
type TransactionManager interface {
	// WithTransaction runs fn against a transactional view of the store.
	// Any error returned by fn rolls every write back.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error
}

// RuleSetVersion summarises a rule list so cached quotes are invalidated when
// any rule is added, removed or edited.
func RuleSetVersion(rules []domain.SeasonalRule) string {
	var latest time.Time
	for _, r := range rules {
		if r.UpdatedAt.After(latest) {
			latest = r.UpdatedAt
		}
	}
	return versionString(len(rules), latest)
}

// CouponVersion changes whenever a coupon is used or edited
func CouponVersion(c *domain.Coupon) string {
	if c == nil {
		return "none"
	}
	return versionString(c.CurrentUses, c.UpdatedAt)
}

func versionString(n int, t time.Time) string {
	if t.IsZero() {
		return fmt.Sprintf("%d-0", n)
	}
	return fmt.Sprintf("%d-%d", n, t.UnixNano())
}
