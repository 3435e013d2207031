// Package api holds the JSON request and response bodies of the HTTP
// transport. Money is always rendered as a fixed two-decimal string.
package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/staylane/pricingservice/internal/booking"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/pricing"
)

// QuoteRequest prices one stay at one hotel. Dates are YYYY-MM-DD.
type QuoteRequest struct {
	HotelID    string `json:"hotel_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Rooms      int    `json:"rooms"`
	Guests     int    `json:"guests"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// ToQuote parses the request dates
func (r QuoteRequest) ToQuote() (booking.QuoteRequest, error) {
	checkIn, checkOut, err := parseDates(r.CheckIn, r.CheckOut)
	if err != nil {
		return booking.QuoteRequest{}, err
	}
	return booking.QuoteRequest{
		HotelID:    r.HotelID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      r.Rooms,
		Guests:     r.Guests,
		CouponCode: r.CouponCode,
	}, nil
}

// QuoteResponse wraps a price breakdown
type QuoteResponse struct {
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// SearchRequest prices the same stay at several hotels
type SearchRequest struct {
	HotelIDs   []string `json:"hotel_ids"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	Rooms      int      `json:"rooms"`
	Guests     int      `json:"guests"`
	CouponCode string   `json:"coupon_code,omitempty"`
}

// ToSearch parses the request dates
func (r SearchRequest) ToSearch() (booking.SearchRequest, error) {
	checkIn, checkOut, err := parseDates(r.CheckIn, r.CheckOut)
	if err != nil {
		return booking.SearchRequest{}, err
	}
	return booking.SearchRequest{
		HotelIDs:   r.HotelIDs,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      r.Rooms,
		Guests:     r.Guests,
		CouponCode: r.CouponCode,
	}, nil
}

// SearchResult is one hotel's entry in a search response
type SearchResult struct {
	HotelID   string             `json:"hotel_id"`
	Breakdown *pricing.Breakdown `json:"breakdown,omitempty"`
	Error     *ErrorBody         `json:"error,omitempty"`
}

// SearchResponse lists results cheapest first, unpriced hotels last
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// NewSearchResponse converts service results
func NewSearchResponse(results []booking.SearchResult) *SearchResponse {
	resp := &SearchResponse{Results: make([]SearchResult, 0, len(results))}
	for _, r := range results {
		item := SearchResult{HotelID: r.HotelID, Breakdown: r.Breakdown}
		if r.Err != nil {
			body := NewErrorBody(r.Err)
			item.Error = &body
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

// ConfirmResponse describes a stored booking
type ConfirmResponse struct {
	BookingID   string            `json:"booking_id"`
	Status      string            `json:"status"`
	CouponCode  string            `json:"coupon_code,omitempty"`
	TotalAmount string            `json:"total_amount"`
	Currency    string            `json:"currency"`
	CreatedAt   time.Time         `json:"created_at"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
}

// NewConfirmResponse converts a confirmation
func NewConfirmResponse(c booking.Confirmation) *ConfirmResponse {
	return &ConfirmResponse{
		BookingID:   c.Booking.ID.String(),
		Status:      string(c.Booking.Status),
		CouponCode:  c.Booking.CouponCode,
		TotalAmount: c.Booking.TotalAmount.StringFixed(2),
		Currency:    c.Booking.Currency,
		CreatedAt:   c.Booking.CreatedAt,
		Breakdown:   c.Breakdown,
	}
}

// ReceiptResponse is the guest-facing tax breakdown of a booking
type ReceiptResponse struct {
	BookingID         string `json:"booking_id"`
	HotelID           string `json:"hotel_id"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	Nights            int    `json:"nights"`
	DiscountAmount    string `json:"discount_amount"`
	SubtotalBeforeTax string `json:"subtotal_before_tax"`
	TaxPercentage     string `json:"tax_percentage"`
	TaxAmount         string `json:"tax_amount"`
	TotalAmount       string `json:"total_amount"`
	Currency          string `json:"currency"`
	CurrencySymbol    string `json:"currency_symbol"`
}

// NewReceiptResponse converts a receipt
func NewReceiptResponse(r domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		BookingID:         r.BookingID.String(),
		HotelID:           r.HotelID,
		CheckIn:           r.CheckIn.Format(domain.DateLayout),
		CheckOut:          r.CheckOut.Format(domain.DateLayout),
		Nights:            r.Nights,
		DiscountAmount:    r.DiscountAmount.StringFixed(2),
		SubtotalBeforeTax: r.SubtotalBeforeTax.StringFixed(2),
		TaxPercentage:     r.TaxPercentage.String(),
		TaxAmount:         r.TaxAmount.StringFixed(2),
		TotalAmount:       r.TotalAmount.StringFixed(2),
		Currency:          r.Currency,
		CurrencySymbol:    r.CurrencySymbol,
	}
}

// ErrorBody is the error payload of both transports
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorBody renders an error. Non-domain errors are not exposed.
func NewErrorBody(err error) ErrorBody {
	if de := domain.GetDomainError(err); de != nil {
		return ErrorBody{Code: de.Code, Message: de.Message, Details: de.Details}
	}
	return ErrorBody{Code: domain.ErrCodeInternal, Message: "internal server error"}
}

// ParseBookingID parses a booking id, reporting bad input as a domain error
func ParseBookingID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewInvalidInputError("booking id must be a UUID", s)
	}
	return id, nil
}

func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewInvalidInputError("check_in must be a YYYY-MM-DD date", checkIn)
	}
	out, err := domain.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewInvalidInputError("check_out must be a YYYY-MM-DD date", checkOut)
	}
	return in, out, nil
}
