package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HotelRateProfile holds the rate settings the pricing engine reads for a hotel.
type HotelRateProfile struct {
	HotelID                 string              `json:"hotel_id"`
	Name                    string              `json:"name"`
	BasePricePerNight       decimal.NullDecimal `json:"base_price_per_night"`
	MaxGuestsPerRoom        int                 `json:"max_guests_per_room"`
	ExtraGuestPricePerNight decimal.Decimal     `json:"extra_guest_price_per_night"`
	TaxPercentage           decimal.Decimal     `json:"tax_percentage"`
	Currency                string              `json:"currency"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// Validate checks the profile can price a stay
func (p HotelRateProfile) Validate() error {
	if !p.BasePricePerNight.Valid {
		return NewMissingRateProfileError(p.HotelID)
	}
	if p.BasePricePerNight.Decimal.IsNegative() {
		return NewInvalidInputError("base price must not be negative", p.HotelID)
	}
	if p.MaxGuestsPerRoom < 1 || p.MaxGuestsPerRoom > MaxGuestsPerRoomCap {
		return NewInvalidInputError(fmt.Sprintf("max guests per room must be between 1 and %d", MaxGuestsPerRoomCap), p.HotelID)
	}
	if p.ExtraGuestPricePerNight.IsNegative() {
		return NewInvalidInputError("extra guest price must not be negative", p.HotelID)
	}
	if p.TaxPercentage.IsNegative() {
		return NewInvalidInputError("tax percentage must not be negative", p.HotelID)
	}
	return nil
}

// BaseRate returns the configured base nightly price.
func (p HotelRateProfile) BaseRate() decimal.Decimal {
	return p.BasePricePerNight.Decimal
}

// AdjustmentKind identifies how a seasonal rule changes the nightly rate
type AdjustmentKind string

const (
	AdjustmentOverridePrice AdjustmentKind = "override_price"
	AdjustmentMultiplier    AdjustmentKind = "multiplier"
)

// Adjustment is either an absolute override price or a multiplier on the base rate.
// The zero value is invalid.
type Adjustment struct {
	kind  AdjustmentKind
	value decimal.Decimal
}

// OverridePrice builds an absolute nightly price adjustment.
func OverridePrice(price decimal.Decimal) Adjustment {
	return Adjustment{kind: AdjustmentOverridePrice, value: price}
}

// Multiplier builds an adjustment that scales the base rate.
func Multiplier(factor decimal.Decimal) Adjustment {
	return Adjustment{kind: AdjustmentMultiplier, value: factor}
}

// NewAdjustment builds an adjustment from nullable storage columns.
// Exactly one of override and multiplier must be set.
func NewAdjustment(override, multiplier decimal.NullDecimal) (Adjustment, error) {
	switch {
	case override.Valid && multiplier.Valid:
		return Adjustment{}, NewInvalidInputError("seasonal rule sets both override price and multiplier", "")
	case override.Valid:
		return OverridePrice(override.Decimal), nil
	case multiplier.Valid:
		return Multiplier(multiplier.Decimal), nil
	default:
		return Adjustment{}, NewInvalidInputError("seasonal rule sets neither override price nor multiplier", "")
	}
}

func (a Adjustment) Kind() AdjustmentKind   { return a.kind }
func (a Adjustment) Value() decimal.Decimal { return a.value }

// Columns splits the adjustment back into nullable override and multiplier values.
func (a Adjustment) Columns() (override, multiplier decimal.NullDecimal) {
	switch a.kind {
	case AdjustmentOverridePrice:
		override = decimal.NewNullDecimal(a.value)
	case AdjustmentMultiplier:
		multiplier = decimal.NewNullDecimal(a.value)
	}
	return override, multiplier
}

func (a Adjustment) String() string {
	if a.kind == "" {
		return "none"
	}
	return fmt.Sprintf("%s=%s", a.kind, a.value.String())
}

// SeasonalRule overrides a hotel's nightly rate for an inclusive date range.
type SeasonalRule struct {
	ID         string     `json:"id"`
	HotelID    string     `json:"hotel_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Adjustment Adjustment `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Validate checks rule invariants and normalises dates to calendar days.
func (r *SeasonalRule) Validate() error {
	if r.HotelID == "" {
		return NewInvalidInputError("seasonal rule requires a hotel", r.ID)
	}
	r.StartDate = DateOf(r.StartDate)
	r.EndDate = DateOf(r.EndDate)
	if r.EndDate.Before(r.StartDate) {
		return NewInvalidInputError("seasonal rule ends before it starts", r.ID)
	}
	switch r.Adjustment.kind {
	case AdjustmentOverridePrice, AdjustmentMultiplier:
	default:
		return NewInvalidInputError("seasonal rule has no price adjustment", r.ID)
	}
	if r.Adjustment.value.IsNegative() {
		return NewInvalidInputError("seasonal rule adjustment must not be negative", r.ID)
	}
	return nil
}

// SpanDays is the length of the rule range used to pick the tightest rule.
func (r SeasonalRule) SpanDays() int {
	return DaysBetween(r.StartDate, r.EndDate)
}

// Covers reports whether the rule applies to the given night.
func (r SeasonalRule) Covers(night time.Time) bool {
	night = DateOf(night)
	return !night.Before(r.StartDate) && !night.After(r.EndDate)
}

// Stay is the ephemeral description of what is being priced.
type Stay struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Rooms    int       `json:"rooms"`
	Guests   int       `json:"guests"`
}

// NewStay builds a validated stay with dates truncated to calendar days.
func NewStay(checkIn, checkOut time.Time, rooms, guests int) (Stay, error) {
	s := Stay{CheckIn: DateOf(checkIn), CheckOut: DateOf(checkOut), Rooms: rooms, Guests: guests}
	if err := s.Validate(); err != nil {
		return Stay{}, err
	}
	return s, nil
}

// Occupancy limits of a single request. With MaxGuestsPerRoom they keep
// rooms*maxGuestsPerRoom far inside int range.
const (
	MaxRooms            = 100
	MaxGuests           = 500
	MaxGuestsPerRoomCap = 100
)

// Validate checks date range first, then occupancy.
func (s Stay) Validate() error {
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return NewInvalidDateRangeError("check-in and check-out are required")
	}
	if !DateOf(s.CheckOut).After(DateOf(s.CheckIn)) {
		return NewInvalidDateRangeError(fmt.Sprintf("%s..%s",
			s.CheckIn.Format(DateLayout), s.CheckOut.Format(DateLayout)))
	}
	if s.Rooms < 1 || s.Guests < 1 || s.Rooms > MaxRooms || s.Guests > MaxGuests {
		return NewInvalidOccupancyError(fmt.Sprintf("rooms=%d guests=%d", s.Rooms, s.Guests))
	}
	return nil
}

// Nights is the number of billable nights; the check-out night is excluded.
func (s Stay) Nights() int {
	return DaysBetween(s.CheckIn, s.CheckOut)
}

// DiscountType represents the type of coupon discount
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Coupon is a promotional code applied to the pre-tax subtotal.
type Coupon struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	DiscountType     DiscountType    `json:"discount_type"`
	DiscountValue    decimal.Decimal `json:"discount_value"`
	ValidFrom        time.Time       `json:"valid_from"`
	ValidTo          time.Time       `json:"valid_to"`
	MaxUses          *int            `json:"max_uses,omitempty"`
	CurrentUses      int             `json:"current_uses"`
	MinBookingAmount decimal.Decimal `json:"min_booking_amount"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NormalizeCouponCode makes coupon lookups case-insensitive.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks coupon invariants at the data-access boundary.
func (c *Coupon) Validate() error {
	c.Code = NormalizeCouponCode(c.Code)
	if c.Code == "" {
		return NewInvalidInputError("coupon code is required", c.ID)
	}
	switch c.DiscountType {
	case DiscountTypePercentage:
		if c.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
			return NewInvalidInputError("percentage discount cannot exceed 100", c.Code)
		}
	case DiscountTypeFixed:
	default:
		return NewInvalidInputError("unknown discount type", string(c.DiscountType))
	}
	if c.DiscountValue.IsNegative() || c.MinBookingAmount.IsNegative() {
		return NewInvalidInputError("coupon amounts must not be negative", c.Code)
	}
	if c.ValidTo.Before(c.ValidFrom) {
		return NewInvalidInputError("coupon validity window is inverted", c.Code)
	}
	if c.MaxUses != nil && c.CurrentUses > *c.MaxUses {
		return NewInvalidInputError("coupon current uses exceed max uses", c.Code)
	}
	return nil
}

// Exhausted reports whether the usage cap has been reached.
func (c Coupon) Exhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the persisted result of a confirmed quote. Amounts are stored verbatim.
type Booking struct {
	ID                     uuid.UUID       `json:"id"`
	HotelID                string          `json:"hotel_id"`
	GuestID                string          `json:"guest_id"`
	Stay                   Stay            `json:"stay"`
	CouponCode             string          `json:"coupon_code,omitempty"`
	SubtotalBeforeDiscount decimal.Decimal `json:"subtotal_before_discount"`
	DiscountAmount         decimal.Decimal `json:"discount_amount"`
	TaxPercentage          decimal.Decimal `json:"tax_percentage"`
	TotalAmount            decimal.Decimal `json:"total_amount"`
	Currency               string          `json:"currency"`
	Status                 BookingStatus   `json:"status"`
	CreatedAt              time.Time       `json:"created_at"`
}

// OutboxEvent is an event written in the same transaction as the change it
// describes and relayed to the broker later.
type OutboxEvent struct {
	ID           string     `json:"id"`
	EventType    string     `json:"event_type"`
	PartitionKey string     `json:"partition_key"`
	Payload      []byte     `json:"payload"`
	RetryCount   int        `json:"retry_count"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// Receipt is rebuilt from a stored booking total using the inverse tax path.
type Receipt struct {
	BookingID         uuid.UUID       `json:"booking_id"`
	HotelID           string          `json:"hotel_id"`
	CheckIn           time.Time       `json:"check_in"`
	CheckOut          time.Time       `json:"check_out"`
	Nights            int             `json:"nights"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	SubtotalBeforeTax decimal.Decimal `json:"subtotal_before_tax"`
	TaxPercentage     decimal.Decimal `json:"tax_percentage"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Currency          string          `json:"currency"`
	CurrencySymbol    string          `json:"currency_symbol"`
}

var currencySymbols = map[string]string{
	"THB": "฿",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"SAR": "﷼",
	"AED": "د.إ",
}

// CurrencySymbol returns a display symbol for an ISO currency code, or the code itself.
func CurrencySymbol(currency string) string {
	currency = strings.ToUpper(currency)
	if sym, ok := currencySymbols[currency]; ok {
		return sym
	}
	return currency
}
