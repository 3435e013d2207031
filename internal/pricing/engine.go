package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
)

// Input is everything needed to price one stay at one hotel. The caller
// fetches the profile, rules and coupon before invoking the engine.
type Input struct {
	HotelID    string
	Stay       domain.Stay
	CouponCode string
	Profile    domain.HotelRateProfile
	Rules      []domain.SeasonalRule
	// Coupon is nil when no code was given or the code does not exist.
	Coupon *domain.Coupon
	// Now is the instant coupon validity is checked against.
	Now time.Time
}

// Engine computes price breakdowns. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a pricing engine that reports data problems to logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Quote prices a stay. Invalid dates, occupancy or a missing base rate abort
// with an error and no breakdown. An ineligible coupon does not: the breakdown
// is priced without it and carries the rejection reason.
func (e *Engine) Quote(ctx context.Context, in Input) (Breakdown, error) {
	stay := domain.Stay{
		CheckIn:  domain.DateOf(in.Stay.CheckIn),
		CheckOut: domain.DateOf(in.Stay.CheckOut),
		Rooms:    in.Stay.Rooms,
		Guests:   in.Stay.Guests,
	}
	if err := stay.Validate(); err != nil {
		return Breakdown{}, err
	}
	if in.Profile.HotelID == "" {
		in.Profile.HotelID = in.HotelID
	}
	if err := in.Profile.Validate(); err != nil {
		return Breakdown{}, err
	}

	logger := log.With(ctx, e.logger)
	nights := NewRuleIndex(in.HotelID, in.Rules).Resolve(stay.CheckIn, stay.CheckOut)
	base := in.Profile.BaseRate()

	lines := make([]NightLine, len(nights))
	amounts := make([]decimal.Decimal, len(nights))
	for i, n := range nights {
		amount := NightlyRate(n.Rule, base)
		line := NightLine{Date: n.Date, Amount: amount}
		if n.Rule != nil {
			line.RuleID = n.Rule.ID
			if n.Ambiguous {
				logger.Warn("Ambiguous seasonal rules for night, picked most recent",
					zap.String("hotel_id", in.HotelID),
					zap.String("date", n.Date.Format(domain.DateLayout)),
					zap.String("rule_id", n.Rule.ID),
					zap.Int("span_days", n.Rule.SpanDays()))
				metrics.RecordAmbiguousSeasonalRule(in.HotelID)
			}
		}
		lines[i] = line
		amounts[i] = amount
	}

	subtotalBeforeExtras := SumNights(amounts)
	extra := ExtraGuestCharge(stay.Guests, stay.Rooms, in.Profile.MaxGuestsPerRoom,
		in.Profile.ExtraGuestPricePerNight, len(nights))
	subtotalBeforeDiscount := subtotalBeforeExtras.Add(extra)

	code := domain.NormalizeCouponCode(in.CouponCode)
	if code == "" && in.Coupon != nil {
		code = in.Coupon.Code
	}

	var discount DiscountResult
	switch {
	case code == "":
		discount = DiscountResult{Amount: decimal.Zero}
	case in.Coupon == nil:
		discount = DiscountResult{Amount: decimal.Zero, Reason: RejectionNotFound}
	default:
		now := in.Now
		if now.IsZero() {
			now = time.Now()
		}
		discount = ApplyCoupon(subtotalBeforeDiscount, in.Coupon, now)
	}
	if discount.Reason != RejectionNone {
		logger.Info("Coupon not applied",
			zap.String("hotel_id", in.HotelID),
			zap.String("coupon_code", code),
			zap.String("reason", string(discount.Reason)))
		metrics.RecordCouponRejected(string(discount.Reason))
	}

	net := subtotalBeforeDiscount.Sub(discount.Amount)
	tax := ApplyTax(net, in.Profile.TaxPercentage)

	return Breakdown{
		HotelID:                in.HotelID,
		CheckIn:                stay.CheckIn,
		CheckOut:               stay.CheckOut,
		Rooms:                  stay.Rooms,
		Guests:                 stay.Guests,
		Nights:                 len(nights),
		SubtotalBeforeExtras:   subtotalBeforeExtras,
		ExtraGuestCharge:       extra,
		SubtotalBeforeDiscount: subtotalBeforeDiscount,
		DiscountAmount:         discount.Amount,
		NetAmount:              net,
		TaxPercentage:          in.Profile.TaxPercentage,
		TaxAmount:              tax.TaxAmount,
		TotalAmount:            tax.TotalAmount,
		Currency:               in.Profile.Currency,
		CouponCode:             code,
		CouponApplied:          discount.Applied,
		CouponRejection:        discount.Reason,
		lines:                  lines,
	}, nil
}
