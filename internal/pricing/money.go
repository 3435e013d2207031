package pricing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.New(1, -2)
)

// Round2 rounds half-up to two decimal places. Amounts in the engine are
// never negative, so half-away-from-zero is the same as half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns amount*pct/100 without rounding.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// WithinCent reports whether a and b differ by at most 0.01.
func WithinCent(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(cent)
}
