package pricing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staylane/pricingservice/internal/domain"
)

// NightLine is the price of one calendar night and the rule that set it.
type NightLine struct {
	Date   time.Time
	RuleID string
	Amount decimal.Decimal
}

// Breakdown is the itemised price of a stay. It is a value type; the per-night
// lines are only reachable through copying accessors.
type Breakdown struct {
	HotelID  string
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    int
	Guests   int
	Nights   int

	SubtotalBeforeExtras   decimal.Decimal
	ExtraGuestCharge       decimal.Decimal
	SubtotalBeforeDiscount decimal.Decimal
	DiscountAmount         decimal.Decimal
	NetAmount              decimal.Decimal
	TaxPercentage          decimal.Decimal
	TaxAmount              decimal.Decimal
	TotalAmount            decimal.Decimal
	Currency               string

	CouponCode      string
	CouponApplied   bool
	CouponRejection CouponRejection

	lines []NightLine
}

// PerNightAmounts returns one amount per night in calendar order.
func (b Breakdown) PerNightAmounts() []decimal.Decimal {
	out := make([]decimal.Decimal, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Amount
	}
	return out
}

// NightLines returns a copy of the per-night detail.
func (b Breakdown) NightLines() []NightLine {
	return append([]NightLine(nil), b.lines...)
}

// CouponErr returns the InvalidCoupon condition for a rejected coupon, or nil.
func (b Breakdown) CouponErr() error {
	if b.CouponRejection == RejectionNone {
		return nil
	}
	return domain.NewInvalidCouponError(b.CouponCode, string(b.CouponRejection))
}

type nightLineJSON struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id,omitempty"`
	Amount string `json:"amount"`
}

type breakdownJSON struct {
	HotelID                string          `json:"hotel_id"`
	CheckIn                string          `json:"check_in"`
	CheckOut               string          `json:"check_out"`
	Rooms                  int             `json:"rooms"`
	Guests                 int             `json:"guests"`
	Nights                 int             `json:"nights"`
	PerNightAmounts        []string        `json:"per_night_amounts"`
	NightDetails           []nightLineJSON `json:"night_details"`
	SubtotalBeforeExtras   string          `json:"subtotal_before_extras"`
	ExtraGuestCharge       string          `json:"extra_guest_charge"`
	SubtotalBeforeDiscount string          `json:"subtotal_before_discount"`
	DiscountAmount         string          `json:"discount_amount"`
	NetAmount              string          `json:"net_amount"`
	TaxPercentage          string          `json:"tax_percentage"`
	TaxAmount              string          `json:"tax_amount"`
	TotalAmount            string          `json:"total_amount"`
	Currency               string          `json:"currency,omitempty"`
	CouponCode             string          `json:"coupon_code,omitempty"`
	CouponApplied          bool            `json:"coupon_applied"`
	CouponRejection        string          `json:"coupon_rejection,omitempty"`
}

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }

// MarshalJSON renders every monetary field as a fixed two-decimal string. The
// tax rate is not money and keeps its full precision.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	w := breakdownJSON{
		HotelID:                b.HotelID,
		CheckIn:                b.CheckIn.Format(domain.DateLayout),
		CheckOut:               b.CheckOut.Format(domain.DateLayout),
		Rooms:                  b.Rooms,
		Guests:                 b.Guests,
		Nights:                 b.Nights,
		PerNightAmounts:        make([]string, len(b.lines)),
		NightDetails:           make([]nightLineJSON, len(b.lines)),
		SubtotalBeforeExtras:   fixed(b.SubtotalBeforeExtras),
		ExtraGuestCharge:       fixed(b.ExtraGuestCharge),
		SubtotalBeforeDiscount: fixed(b.SubtotalBeforeDiscount),
		DiscountAmount:         fixed(b.DiscountAmount),
		NetAmount:              fixed(b.NetAmount),
		TaxPercentage:          b.TaxPercentage.String(),
		TaxAmount:              fixed(b.TaxAmount),
		TotalAmount:            fixed(b.TotalAmount),
		Currency:               b.Currency,
		CouponCode:             b.CouponCode,
		CouponApplied:          b.CouponApplied,
		CouponRejection:        string(b.CouponRejection),
	}
	for i, l := range b.lines {
		w.PerNightAmounts[i] = fixed(l.Amount)
		w.NightDetails[i] = nightLineJSON{
			Date:   l.Date.Format(domain.DateLayout),
			RuleID: l.RuleID,
			Amount: fixed(l.Amount),
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON restores a breakdown written by MarshalJSON.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var w breakdownJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var err error
	parseDate := func(s string) time.Time {
		if err != nil {
			return time.Time{}
		}
		var t time.Time
		t, err = domain.ParseDate(s)
		return t
	}
	parseAmount := func(s string) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		var d decimal.Decimal
		d, err = decimal.NewFromString(s)
		return d
	}

	out := Breakdown{
		HotelID:                w.HotelID,
		CheckIn:                parseDate(w.CheckIn),
		CheckOut:               parseDate(w.CheckOut),
		Rooms:                  w.Rooms,
		Guests:                 w.Guests,
		Nights:                 w.Nights,
		SubtotalBeforeExtras:   parseAmount(w.SubtotalBeforeExtras),
		ExtraGuestCharge:       parseAmount(w.ExtraGuestCharge),
		SubtotalBeforeDiscount: parseAmount(w.SubtotalBeforeDiscount),
		DiscountAmount:         parseAmount(w.DiscountAmount),
		NetAmount:              parseAmount(w.NetAmount),
		TaxPercentage:          parseAmount(w.TaxPercentage),
		TaxAmount:              parseAmount(w.TaxAmount),
		TotalAmount:            parseAmount(w.TotalAmount),
		Currency:               w.Currency,
		CouponCode:             w.CouponCode,
		CouponApplied:          w.CouponApplied,
		CouponRejection:        CouponRejection(w.CouponRejection),
	}
	for _, l := range w.NightDetails {
		out.lines = append(out.lines, NightLine{
			Date:   parseDate(l.Date),
			RuleID: l.RuleID,
			Amount: parseAmount(l.Amount),
		})
	}
	if err != nil {
		return fmt.Errorf("failed to decode breakdown: %w", err)
	}

	*b = out
	return nil
}
