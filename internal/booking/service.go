package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/staylane/pricingservice/internal/cache"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/events"
	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/outbox"
	"github.com/staylane/pricingservice/internal/pricing"
	"github.com/staylane/pricingservice/internal/repository"
	"github.com/staylane/pricingservice/internal/tracing"
)

// Options configures a Service. Zero values select defaults.
type Options struct {
	SearchConcurrency int
	MaxNights         int
	Cache             *cache.QuoteCache
	Logger            *zap.Logger
	Now               func() time.Time
}

// Service loads pricing inputs from storage, runs the pricing engine and
// turns accepted quotes into bookings.
type Service struct {
	store       repository.Store
	tx          repository.TransactionManager
	engine      *pricing.Engine
	cache       *cache.QuoteCache
	logger      *zap.Logger
	concurrency int
	maxNights   int
	now         func() time.Time
}

// NewService creates a booking service
func NewService(store repository.Store, tx repository.TransactionManager, engine *pricing.Engine, opts Options) *Service {
	s := &Service{
		store:       store,
		tx:          tx,
		engine:      engine,
		cache:       opts.Cache,
		logger:      opts.Logger,
		concurrency: opts.SearchConcurrency,
		maxNights:   opts.MaxNights,
		now:         opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.engine == nil {
		s.engine = pricing.NewEngine(s.logger)
	}
	if s.concurrency <= 0 {
		s.concurrency = 8
	}
	if s.maxNights <= 0 {
		s.maxNights = 365
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// QuoteRequest describes one stay at one hotel
type QuoteRequest struct {
	HotelID    string
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
	Guests     int
	CouponCode string
}

func (r QuoteRequest) stay() domain.Stay {
	return domain.Stay{
		CheckIn:  domain.DateOf(r.CheckIn),
		CheckOut: domain.DateOf(r.CheckOut),
		Rooms:    r.Rooms,
		Guests:   r.Guests,
	}
}

func (s *Service) validateStay(stay domain.Stay) error {
	if err := stay.Validate(); err != nil {
		return err
	}
	if n := stay.Nights(); n > s.maxNights {
		return domain.NewInvalidDateRangeError(fmt.Sprintf("stay of %d nights exceeds the %d night limit", n, s.maxNights))
	}
	return nil
}

// Quote prices a stay. Results may be served from the quote cache.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (pricing.Breakdown, error) {
	ctx, span := tracing.StartSpan(ctx, "booking.Quote", attribute.String("hotel_id", req.HotelID))
	defer span.End()

	start := time.Now()
	b, err := s.quote(ctx, req, true)
	s.recordQuote(ctx, "quote", b, err, time.Since(start))
	return b, err
}

// quote loads inputs and prices one hotel. useCache is false on the
// confirmation path, which always reads fresh rows.
func (s *Service) quote(ctx context.Context, req QuoteRequest, useCache bool) (pricing.Breakdown, error) {
	ctx = log.WithHotelID(ctx, req.HotelID)
	in, err := s.loadInput(ctx, req)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	var key cache.QuoteKey
	if useCache && s.cache != nil {
		key = cacheKey(req, in)
		if b, ok := s.cache.Get(ctx, key); ok {
			return b, nil
		}
	}

	b, err := s.engine.Quote(ctx, in)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	if useCache && s.cache != nil {
		notAfter := couponBoundary(in.Coupon, in.Now)
		if !notAfter.IsZero() {
			notAfter = time.Now().Add(notAfter.Sub(in.Now))
		}
		s.cache.Set(ctx, key, b, notAfter)
	}
	return b, nil
}

func (s *Service) loadInput(ctx context.Context, req QuoteRequest) (pricing.Input, error) {
	stay := req.stay()
	if err := s.validateStay(stay); err != nil {
		return pricing.Input{}, err
	}
	if req.HotelID == "" {
		return pricing.Input{}, domain.NewInvalidInputError("hotel id is required", "")
	}

	profile, err := s.store.Hotels().GetRateProfile(ctx, req.HotelID)
	if err != nil {
		return pricing.Input{}, err
	}
	rules, err := s.store.SeasonalRules().ListForStay(ctx, req.HotelID, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return pricing.Input{}, err
	}

	in := pricing.Input{
		HotelID:    req.HotelID,
		Stay:       stay,
		CouponCode: domain.NormalizeCouponCode(req.CouponCode),
		Profile:    profile,
		Rules:      rules,
		Now:        s.now(),
	}
	if in.CouponCode != "" {
		coupon, err := s.store.Coupons().GetByCode(ctx, in.CouponCode)
		switch {
		case err == nil:
			in.Coupon = &coupon
		case errors.Is(err, domain.ErrNotFound):
			// priced without a coupon; the engine reports coupon_not_found
		default:
			return pricing.Input{}, err
		}
	}
	return in, nil
}

func cacheKey(req QuoteRequest, in pricing.Input) cache.QuoteKey {
	return cache.QuoteKey{
		HotelID:        req.HotelID,
		CheckIn:        in.Stay.CheckIn,
		CheckOut:       in.Stay.CheckOut,
		Rooms:          in.Stay.Rooms,
		Guests:         in.Stay.Guests,
		CouponCode:     in.CouponCode,
		ProfileVersion: strconv.FormatInt(in.Profile.UpdatedAt.UnixNano(), 10),
		RuleSetVersion: repository.RuleSetVersion(in.Rules),
		CouponVersion:  repository.CouponVersion(in.Coupon),
	}
}

// couponBoundary is the next instant the coupon's eligibility can change on
// its own, or zero when there is none.
func couponBoundary(c *domain.Coupon, now time.Time) time.Time {
	if c == nil {
		return time.Time{}
	}
	if now.Before(c.ValidFrom) {
		return c.ValidFrom
	}
	if !now.After(c.ValidTo) {
		return c.ValidTo.Add(time.Nanosecond)
	}
	return time.Time{}
}

func (s *Service) recordQuote(ctx context.Context, caller string, b pricing.Breakdown, err error, d time.Duration) {
	outcome := "ok"
	switch {
	case err == nil:
		if b.CouponRejection != pricing.RejectionNone {
			outcome = "coupon_rejected"
		}
		metrics.RecordQuoteTotal(b.TotalAmount.InexactFloat64())
	case domain.GetDomainError(err) != nil:
		outcome = domain.GetDomainError(err).Code
	default:
		outcome = "error"
		tracing.RecordError(ctx, err)
		log.With(ctx, s.logger).Error("Quote failed", zap.String("caller", caller), zap.Error(err))
	}
	metrics.RecordQuote(caller, outcome, d)
}

// SearchRequest prices the same stay at several hotels
type SearchRequest struct {
	HotelIDs   []string
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
	Guests     int
	CouponCode string
}

// SearchResult is one hotel's outcome. Exactly one of Breakdown and Err is set.
type SearchResult struct {
	HotelID   string
	Breakdown *pricing.Breakdown
	Err       error
}

// Search prices every hotel concurrently. Hotels that cannot be priced are
// returned after the priced ones; results are ordered by total, then hotel id.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	ctx, span := tracing.StartSpan(ctx, "booking.Search", attribute.Int("hotels", len(req.HotelIDs)))
	defer span.End()

	stay := domain.Stay{CheckIn: domain.DateOf(req.CheckIn), CheckOut: domain.DateOf(req.CheckOut), Rooms: req.Rooms, Guests: req.Guests}
	if err := s.validateStay(stay); err != nil {
		return nil, err
	}

	hotelIDs := uniqueIDs(req.HotelIDs)
	if len(hotelIDs) == 0 {
		return nil, domain.NewInvalidInputError("at least one hotel id is required", "")
	}

	results := make([]SearchResult, len(hotelIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, hotelID := range hotelIDs {
		g.Go(func() error {
			start := time.Now()
			b, err := s.quote(gctx, QuoteRequest{
				HotelID:    hotelID,
				CheckIn:    req.CheckIn,
				CheckOut:   req.CheckOut,
				Rooms:      req.Rooms,
				Guests:     req.Guests,
				CouponCode: req.CouponCode,
			}, true)
			s.recordQuote(gctx, "search", b, err, time.Since(start))

			results[i] = SearchResult{HotelID: hotelID}
			if err != nil {
				if domain.GetDomainError(err) == nil {
					return fmt.Errorf("hotel %s: %w", hotelID, err)
				}
				results[i].Err = err
				return nil
			}
			results[i].Breakdown = &b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracing.RecordError(ctx, err)
		return nil, err
	}

	sortResults(results)
	return results, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sortResults(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		switch {
		case a.Breakdown != nil && b.Breakdown == nil:
			return true
		case a.Breakdown == nil && b.Breakdown != nil:
			return false
		case a.Breakdown != nil && !a.Breakdown.TotalAmount.Equal(b.Breakdown.TotalAmount):
			return a.Breakdown.TotalAmount.LessThan(b.Breakdown.TotalAmount)
		default:
			return a.HotelID < b.HotelID
		}
	})
}

// ConfirmRequest turns a quote into a booking for an authenticated guest
type ConfirmRequest struct {
	QuoteRequest
	GuestID string
}

// Confirmation is the stored booking and the breakdown it was priced with
type Confirmation struct {
	Booking   domain.Booking
	Breakdown pricing.Breakdown
}

// Confirm re-prices the stay from fresh data, stores the booking and then
// consumes a coupon use in the same transaction. If the coupon ran out since
// it was quoted the booking is re-priced and stored without it. The booking
// and coupon events are written to the outbox in that transaction too.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) (Confirmation, error) {
	ctx, span := tracing.StartSpan(ctx, "booking.Confirm", attribute.String("hotel_id", req.HotelID))
	defer span.End()

	if req.GuestID == "" {
		return Confirmation{}, domain.NewUnauthorizedError("guest id is required to confirm a booking")
	}
	ctx = log.WithHotelID(log.WithGuestID(ctx, req.GuestID), req.HotelID)
	logger := log.With(ctx, s.logger)

	start := time.Now()
	in, err := s.loadInput(ctx, req.QuoteRequest)
	if err != nil {
		s.recordQuote(ctx, "confirm", pricing.Breakdown{}, err, time.Since(start))
		return Confirmation{}, err
	}
	b, err := s.engine.Quote(ctx, in)
	s.recordQuote(ctx, "confirm", b, err, time.Since(start))
	if err != nil {
		return Confirmation{}, err
	}

	booking, err := s.persist(ctx, req, b)
	if errors.Is(err, repository.ErrCouponExhausted) {
		logger.Info("Coupon exhausted at confirmation, re-pricing without it",
			zap.String("coupon_code", b.CouponCode))

		in.Coupon = exhaustedCopy(in.Coupon)
		if b, err = s.engine.Quote(ctx, in); err != nil {
			return Confirmation{}, err
		}
		booking, err = s.persist(ctx, req, b)
	}
	if err != nil {
		tracing.RecordError(ctx, err)
		return Confirmation{}, err
	}

	metrics.RecordBookingConfirmed(booking.Currency, b.CouponApplied)
	logger.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("total_amount", booking.TotalAmount.StringFixed(2)),
		zap.Bool("coupon_applied", b.CouponApplied))

	return Confirmation{Booking: booking, Breakdown: b}, nil
}

func (s *Service) persist(ctx context.Context, req ConfirmRequest, b pricing.Breakdown) (domain.Booking, error) {
	booking := domain.Booking{
		ID:                     uuid.New(),
		HotelID:                req.HotelID,
		GuestID:                req.GuestID,
		Stay:                   domain.Stay{CheckIn: b.CheckIn, CheckOut: b.CheckOut, Rooms: b.Rooms, Guests: b.Guests},
		SubtotalBeforeDiscount: b.SubtotalBeforeDiscount,
		DiscountAmount:         b.DiscountAmount,
		TaxPercentage:          b.TaxPercentage,
		TotalAmount:            b.TotalAmount,
		Currency:               b.Currency,
		Status:                 domain.BookingStatusConfirmed,
	}
	if b.CouponApplied {
		booking.CouponCode = b.CouponCode
	}

	err := s.tx.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Bookings().Create(ctx, &booking); err != nil {
			return err
		}
		confirmed, err := events.NewBookingConfirmed(bookingConfirmed(booking, b.Nights))
		if err != nil {
			return err
		}
		if err := enqueue(ctx, tx, booking.HotelID, confirmed); err != nil {
			return err
		}
		if !b.CouponApplied {
			return nil
		}

		c, err := tx.Coupons().IncrementUses(ctx, b.CouponCode)
		if err != nil {
			return err
		}
		redeemed, err := events.NewCouponRedeemed(events.CouponRedeemed{
			Code:        c.Code,
			BookingID:   booking.ID.String(),
			CurrentUses: c.CurrentUses,
			MaxUses:     c.MaxUses,
			RedeemedAt:  s.now().UTC(),
		})
		if err != nil {
			return err
		}
		return enqueue(ctx, tx, c.Code, redeemed)
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return booking, nil
}

func enqueue(ctx context.Context, tx repository.Store, key string, event *events.Event) error {
	row, err := outbox.NewEvent(key, event)
	if err != nil {
		return err
	}
	return tx.Outbox().Insert(ctx, row)
}

func bookingConfirmed(booking domain.Booking, nights int) events.BookingConfirmed {
	return events.BookingConfirmed{
		BookingID:      booking.ID.String(),
		HotelID:        booking.HotelID,
		GuestID:        booking.GuestID,
		CheckIn:        booking.Stay.CheckIn.Format(domain.DateLayout),
		CheckOut:       booking.Stay.CheckOut.Format(domain.DateLayout),
		Nights:         nights,
		Rooms:          booking.Stay.Rooms,
		Guests:         booking.Stay.Guests,
		CouponCode:     booking.CouponCode,
		DiscountAmount: booking.DiscountAmount.StringFixed(2),
		TotalAmount:    booking.TotalAmount.StringFixed(2),
		Currency:       booking.Currency,
		ConfirmedAt:    booking.CreatedAt,
	}
}

func exhaustedCopy(c *domain.Coupon) *domain.Coupon {
	if c == nil {
		return nil
	}
	out := *c
	if out.MaxUses != nil {
		out.CurrentUses = *out.MaxUses
	} else {
		out.Active = false
	}
	return &out
}

// Receipt rebuilds the tax lines of a stored booking from its total
func (s *Service) Receipt(ctx context.Context, bookingID uuid.UUID) (domain.Receipt, error) {
	ctx, span := tracing.StartSpan(ctx, "booking.Receipt", attribute.String("booking_id", bookingID.String()))
	defer span.End()

	b, err := s.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return domain.Receipt{}, err
	}

	subtotal, tax := pricing.ExtractTax(b.TotalAmount, b.TaxPercentage).Display(b.TotalAmount)
	return domain.Receipt{
		BookingID:         b.ID,
		HotelID:           b.HotelID,
		CheckIn:           b.Stay.CheckIn,
		CheckOut:          b.Stay.CheckOut,
		Nights:            b.Stay.Nights(),
		DiscountAmount:    b.DiscountAmount,
		SubtotalBeforeTax: subtotal,
		TaxPercentage:     b.TaxPercentage,
		TaxAmount:         tax,
		TotalAmount:       pricing.Round2(b.TotalAmount),
		Currency:          b.Currency,
		CurrencySymbol:    domain.CurrencySymbol(b.Currency),
	}, nil
}

// Booking returns a stored booking. Guests can only read their own bookings.
func (s *Service) Booking(ctx context.Context, bookingID uuid.UUID, guestID string) (domain.Booking, error) {
	b, err := s.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if guestID != "" && b.GuestID != guestID {
		return domain.Booking{}, domain.NewNotFoundError("booking", bookingID.String())
	}
	return b, nil
}
