package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/staylane/pricingservice/internal/domain"
)

// NightlyRate converts the governing rule (or none) into the price of one night.
// An override price is returned verbatim; a multiplier is applied to the base
// rate and rounded because the result is about to be summed.
func NightlyRate(rule *domain.SeasonalRule, baseRate decimal.Decimal) decimal.Decimal {
	if rule == nil {
		return baseRate
	}
	switch rule.Adjustment.Kind() {
	case domain.AdjustmentOverridePrice:
		return rule.Adjustment.Value()
	case domain.AdjustmentMultiplier:
		return Round2(baseRate.Mul(rule.Adjustment.Value()))
	default:
		return baseRate
	}
}

// SumNights adds per-night amounts and rounds the total once.
func SumNights(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round2(total)
}
