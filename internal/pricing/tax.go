package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxResult is the forward tax computation on a net amount.
type TaxResult struct {
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ApplyTax adds the hotel tax to a post-discount, pre-tax amount.
func ApplyTax(netAmount, taxPercentage decimal.Decimal) TaxResult {
	tax := Round2(percentOf(netAmount, taxPercentage))
	return TaxResult{
		TaxAmount:   tax,
		TotalAmount: netAmount.Add(tax),
	}
}

// ExtractedTax is the inverse computation on a tax-inclusive total.
// Values are unrounded so that ApplyTax(SubtotalBeforeTax) reproduces the total.
type ExtractedTax struct {
	SubtotalBeforeTax decimal.Decimal
	TaxAmount         decimal.Decimal
}

// ExtractTax splits a stored tax-inclusive total into subtotal and tax.
func ExtractTax(totalAmount, taxPercentage decimal.Decimal) ExtractedTax {
	if !taxPercentage.IsPositive() {
		return ExtractedTax{SubtotalBeforeTax: totalAmount, TaxAmount: decimal.Zero}
	}
	divisor := decimal.NewFromInt(1).Add(taxPercentage.Div(hundred))
	subtotal := totalAmount.Div(divisor)
	return ExtractedTax{
		SubtotalBeforeTax: subtotal,
		TaxAmount:         totalAmount.Sub(subtotal),
	}
}

// Display rounds the extracted subtotal and derives the tax from it so the two
// displayed lines add up exactly to the stored total.
func (e ExtractedTax) Display(totalAmount decimal.Decimal) (subtotal, tax decimal.Decimal) {
	subtotal = Round2(e.SubtotalBeforeTax)
	return subtotal, Round2(totalAmount).Sub(subtotal)
}
