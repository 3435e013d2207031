package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/repository"
)

const couponColumns = `id, code, discount_type, discount_value, valid_from, valid_to,
       max_uses, current_uses, min_booking_amount, active, created_at, updated_at`

const selectCouponSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

const upsertCouponSQL = `
INSERT INTO coupons (id, code, discount_type, discount_value, valid_from, valid_to,
                     max_uses, current_uses, min_booking_amount, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
ON CONFLICT (code) DO UPDATE SET
    discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    valid_from = EXCLUDED.valid_from,
    valid_to = EXCLUDED.valid_to,
    max_uses = EXCLUDED.max_uses,
    min_booking_amount = EXCLUDED.min_booking_amount,
    active = EXCLUDED.active,
    updated_at = now()`

// The WHERE clause makes the cap check and the increment one atomic statement,
// so concurrent confirmations cannot overshoot max_uses.
const incrementCouponSQL = `
UPDATE coupons
SET current_uses = current_uses + 1, updated_at = now()
WHERE code = $1 AND active AND (max_uses IS NULL OR current_uses < max_uses)
RETURNING ` + couponColumns

// couponRepository implements repository.CouponRepository
type couponRepository struct {
	db DBTX
}

// GetByCode retrieves a coupon by its normalised code
func (r *couponRepository) GetByCode(ctx context.Context, code string) (domain.Coupon, error) {
	defer timed("coupons.get")()

	code = domain.NormalizeCouponCode(code)
	c, err := scanCoupon(r.db.QueryRow(ctx, selectCouponSQL, code))
	if isNoRows(err) {
		return domain.Coupon{}, domain.NewNotFoundError("coupon", code)
	}
	if err != nil {
		return domain.Coupon{}, fmt.Errorf("failed to get coupon %s: %w", code, err)
	}
	return c, nil
}

// Upsert creates or updates a coupon definition. Usage counters are preserved.
func (r *couponRepository) Upsert(ctx context.Context, c domain.Coupon) error {
	defer timed("coupons.upsert")()

	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx, upsertCouponSQL,
		c.ID, c.Code, string(c.DiscountType), c.DiscountValue, c.ValidFrom, c.ValidTo,
		c.MaxUses, c.CurrentUses, c.MinBookingAmount, c.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert coupon %s: %w", c.Code, err)
	}
	return nil
}

// IncrementUses consumes one coupon use if any remain
func (r *couponRepository) IncrementUses(ctx context.Context, code string) (domain.Coupon, error) {
	defer timed("coupons.increment_uses")()

	code = domain.NormalizeCouponCode(code)
	c, err := scanCoupon(r.db.QueryRow(ctx, incrementCouponSQL, code))
	if err == nil {
		return c, nil
	}
	if !isNoRows(err) {
		return domain.Coupon{}, fmt.Errorf("failed to increment coupon %s: %w", code, err)
	}

	// Nothing updated: either the code is unknown or the coupon is used up.
	if _, getErr := r.GetByCode(ctx, code); getErr != nil {
		return domain.Coupon{}, getErr
	}
	return domain.Coupon{}, repository.ErrCouponExhausted
}

func scanCoupon(row pgx.Row) (domain.Coupon, error) {
	var (
		c            domain.Coupon
		discountType string
		maxUses      *int
	)
	err := row.Scan(
		&c.ID,
		&c.Code,
		&discountType,
		&c.DiscountValue,
		&c.ValidFrom,
		&c.ValidTo,
		&maxUses,
		&c.CurrentUses,
		&c.MinBookingAmount,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Coupon{}, err
	}
	c.DiscountType = domain.DiscountType(discountType)
	c.MaxUses = maxUses
	return c, nil
}
