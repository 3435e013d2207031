package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staylane/pricingservice/internal/domain"
)

// CouponRejection is the reason code reported when a supplied coupon is not applied.
type CouponRejection string

const (
	RejectionNone            CouponRejection = ""
	RejectionNotFound        CouponRejection = "coupon_not_found"
	RejectionInactive        CouponRejection = "coupon_inactive"
	RejectionNotYetValid     CouponRejection = "coupon_not_yet_valid"
	RejectionExpired         CouponRejection = "coupon_expired"
	RejectionUsageExhausted  CouponRejection = "coupon_usage_exhausted"
	RejectionMinAmountNotMet CouponRejection = "min_amount_not_met"
)

// DiscountResult is the outcome of applying a coupon to a subtotal.
type DiscountResult struct {
	Amount  decimal.Decimal
	Applied bool
	Reason  CouponRejection
}

// CheckCoupon runs the eligibility checks in order and stops at the first failure.
func CheckCoupon(subtotal decimal.Decimal, coupon *domain.Coupon, now time.Time) CouponRejection {
	switch {
	case coupon == nil:
		return RejectionNotFound
	case !coupon.Active:
		return RejectionInactive
	case now.Before(coupon.ValidFrom):
		return RejectionNotYetValid
	case now.After(coupon.ValidTo):
		return RejectionExpired
	case coupon.Exhausted():
		return RejectionUsageExhausted
	case subtotal.LessThan(coupon.MinBookingAmount):
		return RejectionMinAmountNotMet
	default:
		return RejectionNone
	}
}

// ApplyCoupon computes the discount on the pre-tax subtotal. A nil coupon means
// none was supplied. An ineligible coupon yields a zero discount and a reason;
// it is never applied partially. Usage counters are not touched.
func ApplyCoupon(subtotal decimal.Decimal, coupon *domain.Coupon, now time.Time) DiscountResult {
	if coupon == nil {
		return DiscountResult{Amount: decimal.Zero}
	}
	if reason := CheckCoupon(subtotal, coupon, now); reason != RejectionNone {
		return DiscountResult{Amount: decimal.Zero, Reason: reason}
	}

	var amount decimal.Decimal
	switch coupon.DiscountType {
	case domain.DiscountTypePercentage:
		amount = Round2(percentOf(subtotal, coupon.DiscountValue))
	case domain.DiscountTypeFixed:
		amount = decimal.Min(coupon.DiscountValue, subtotal)
	default:
		return DiscountResult{Amount: decimal.Zero, Reason: RejectionInactive}
	}
	// a percentage above 100 would otherwise push the net amount negative
	amount = decimal.Min(amount, subtotal)

	return DiscountResult{Amount: amount, Applied: true}
}
