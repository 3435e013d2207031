package server

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	pricingv1 "github.com/staylane/pricingservice/api/pricing/v1"
	"github.com/staylane/pricingservice/internal/api"
	"github.com/staylane/pricingservice/internal/booking"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/pricing"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pricing.v1.PricingService"

// Full method names, as seen by interceptors
const (
	MethodQuote          = pricingv1.PricingService_Quote_FullMethodName
	MethodSearch         = pricingv1.PricingService_Search_FullMethodName
	MethodConfirmBooking = pricingv1.PricingService_ConfirmBooking_FullMethodName
	MethodGetReceipt     = pricingv1.PricingService_GetReceipt_FullMethodName
)

// PricingHandler implements PricingServiceServer on top of the booking service
type PricingHandler struct {
	pricingv1.UnimplementedPricingServiceServer
	bookings *booking.Service
}

// NewPricingHandler creates a handler
func NewPricingHandler(bookings *booking.Service) *PricingHandler {
	return &PricingHandler{bookings: bookings}
}

// Quote prices one stay
func (h *PricingHandler) Quote(ctx context.Context, req *pricingv1.QuoteRequest) (*pricingv1.QuoteResponse, error) {
	q, err := quoteFromProto(req)
	if err != nil {
		return nil, err
	}
	b, err := h.bookings.Quote(ctx, q)
	if err != nil {
		return nil, err
	}
	return &pricingv1.QuoteResponse{Breakdown: breakdownToProto(b)}, nil
}

// Search prices one stay at several hotels
func (h *PricingHandler) Search(ctx context.Context, req *pricingv1.SearchRequest) (*pricingv1.SearchResponse, error) {
	checkIn, checkOut, err := datesFromProto(req.GetCheckIn(), req.GetCheckOut())
	if err != nil {
		return nil, err
	}
	results, err := h.bookings.Search(ctx, booking.SearchRequest{
		HotelIDs:   req.GetHotelIds(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      int(req.GetRooms()),
		Guests:     int(req.GetGuests()),
		CouponCode: req.GetCouponCode(),
	})
	if err != nil {
		return nil, err
	}

	resp := &pricingv1.SearchResponse{Results: make([]*pricingv1.SearchResult, 0, len(results))}
	for _, r := range results {
		item := &pricingv1.SearchResult{HotelId: r.HotelID}
		if r.Breakdown != nil {
			item.Breakdown = breakdownToProto(*r.Breakdown)
		}
		if r.Err != nil {
			body := api.NewErrorBody(r.Err)
			item.Error = &pricingv1.ErrorDetail{Code: body.Code, Message: body.Message, Details: body.Details}
		}
		resp.Results = append(resp.Results, item)
	}
	return resp, nil
}

// ConfirmBooking books for the guest the auth interceptor put on the context
func (h *PricingHandler) ConfirmBooking(ctx context.Context, req *pricingv1.ConfirmBookingRequest) (*pricingv1.ConfirmBookingResponse, error) {
	if req.GetQuote() == nil {
		return nil, domain.NewInvalidInputError("quote is required", "")
	}
	q, err := quoteFromProto(req.GetQuote())
	if err != nil {
		return nil, err
	}
	c, err := h.bookings.Confirm(ctx, booking.ConfirmRequest{QuoteRequest: q, GuestID: log.GuestID(ctx)})
	if err != nil {
		return nil, err
	}

	b := c.Booking
	return &pricingv1.ConfirmBookingResponse{
		Booking: &pricingv1.Booking{
			Id:                     b.ID.String(),
			HotelId:                b.HotelID,
			GuestId:                b.GuestID,
			CheckIn:                timestamppb.New(b.Stay.CheckIn),
			CheckOut:               timestamppb.New(b.Stay.CheckOut),
			Rooms:                  int32(b.Stay.Rooms),
			Guests:                 int32(b.Stay.Guests),
			CouponCode:             b.CouponCode,
			SubtotalBeforeDiscount: money(b.SubtotalBeforeDiscount),
			DiscountAmount:         money(b.DiscountAmount),
			TaxPercentage:          b.TaxPercentage.String(),
			TotalAmount:            money(b.TotalAmount),
			Currency:               b.Currency,
			Status:                 string(b.Status),
			CreatedAt:              timestamppb.New(b.CreatedAt),
		},
		Breakdown: breakdownToProto(c.Breakdown),
	}, nil
}

// GetReceipt rebuilds the receipt of one of the caller's bookings
func (h *PricingHandler) GetReceipt(ctx context.Context, req *pricingv1.GetReceiptRequest) (*pricingv1.GetReceiptResponse, error) {
	id, err := api.ParseBookingID(req.GetBookingId())
	if err != nil {
		return nil, err
	}
	if _, err := h.bookings.Booking(ctx, id, log.GuestID(ctx)); err != nil {
		return nil, err
	}
	r, err := h.bookings.Receipt(ctx, id)
	if err != nil {
		return nil, err
	}

	return &pricingv1.GetReceiptResponse{
		Receipt: &pricingv1.Receipt{
			BookingId:         r.BookingID.String(),
			HotelId:           r.HotelID,
			CheckIn:           timestamppb.New(r.CheckIn),
			CheckOut:          timestamppb.New(r.CheckOut),
			Nights:            int32(r.Nights),
			DiscountAmount:    money(r.DiscountAmount),
			SubtotalBeforeTax: money(r.SubtotalBeforeTax),
			TaxPercentage:     r.TaxPercentage.String(),
			TaxAmount:         money(r.TaxAmount),
			TotalAmount:       money(r.TotalAmount),
			Currency:          r.Currency,
			CurrencySymbol:    r.CurrencySymbol,
		},
	}, nil
}

func quoteFromProto(req *pricingv1.QuoteRequest) (booking.QuoteRequest, error) {
	checkIn, checkOut, err := datesFromProto(req.GetCheckIn(), req.GetCheckOut())
	if err != nil {
		return booking.QuoteRequest{}, err
	}
	return booking.QuoteRequest{
		HotelID:    req.GetHotelId(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      int(req.GetRooms()),
		Guests:     int(req.GetGuests()),
		CouponCode: req.GetCouponCode(),
	}, nil
}

// datesFromProto truncates both timestamps to UTC calendar days
func datesFromProto(checkIn, checkOut *timestamppb.Timestamp) (time.Time, time.Time, error) {
	if checkIn == nil || checkOut == nil {
		return time.Time{}, time.Time{}, domain.NewInvalidDateRangeError("check_in and check_out are required")
	}
	if err := checkIn.CheckValid(); err != nil {
		return time.Time{}, time.Time{}, domain.NewInvalidInputError("check_in is not a valid timestamp", err.Error())
	}
	if err := checkOut.CheckValid(); err != nil {
		return time.Time{}, time.Time{}, domain.NewInvalidInputError("check_out is not a valid timestamp", err.Error())
	}
	return domain.DateOf(checkIn.AsTime()), domain.DateOf(checkOut.AsTime()), nil
}

func breakdownToProto(b pricing.Breakdown) *pricingv1.PricingBreakdown {
	out := &pricingv1.PricingBreakdown{
		HotelId:                b.HotelID,
		CheckIn:                timestamppb.New(b.CheckIn),
		CheckOut:               timestamppb.New(b.CheckOut),
		Rooms:                  int32(b.Rooms),
		Guests:                 int32(b.Guests),
		Nights:                 int32(b.Nights),
		SubtotalBeforeExtras:   money(b.SubtotalBeforeExtras),
		ExtraGuestCharge:       money(b.ExtraGuestCharge),
		SubtotalBeforeDiscount: money(b.SubtotalBeforeDiscount),
		DiscountAmount:         money(b.DiscountAmount),
		NetAmount:              money(b.NetAmount),
		TaxPercentage:          b.TaxPercentage.String(),
		TaxAmount:              money(b.TaxAmount),
		TotalAmount:            money(b.TotalAmount),
		Currency:               b.Currency,
		CouponCode:             b.CouponCode,
		CouponApplied:          b.CouponApplied,
		CouponRejection:        string(b.CouponRejection),
	}
	for _, l := range b.NightLines() {
		out.NightLines = append(out.NightLines, &pricingv1.NightLine{
			Date:   timestamppb.New(l.Date),
			Amount: money(l.Amount),
			RuleId: l.RuleID,
		})
	}
	return out
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }
