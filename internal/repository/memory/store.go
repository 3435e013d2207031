package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/repository"
)

// Store is an in-memory implementation of repository.Store used by tests and
// local development.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	hotels   map[string]domain.HotelRateProfile
	rules    map[string]domain.SeasonalRule
	order    []string // rule insertion order
	coupons  map[string]domain.Coupon
	bookings map[uuid.UUID]domain.Booking
	outbox   []domain.OutboxEvent
	now      func() time.Time
}

var (
	_ repository.Store              = (*Store)(nil)
	_ repository.TransactionManager = (*Store)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		hotels:   make(map[string]domain.HotelRateProfile),
		rules:    make(map[string]domain.SeasonalRule),
		order:    make([]string, 0),
		coupons:  make(map[string]domain.Coupon),
		bookings: make(map[uuid.UUID]domain.Booking),
		now:      time.Now,
	}
}

func (s *Store) Hotels() repository.HotelRepository               { return hotelRepo{s} }
func (s *Store) SeasonalRules() repository.SeasonalRuleRepository { return ruleRepo{s} }
func (s *Store) Coupons() repository.CouponRepository             { return couponRepo{s} }
func (s *Store) Bookings() repository.BookingRepository           { return bookingRepo{s} }
func (s *Store) Outbox() repository.OutboxRepository              { return outboxRepo{s} }

// WithTransaction serialises transactions and restores the previous state
// when fn fails or ctx is done before the commit, as a cancelled commit does
// in Postgres.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx repository.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	if err := ctx.Err(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	hotels   map[string]domain.HotelRateProfile
	rules    map[string]domain.SeasonalRule
	order    []string
	coupons  map[string]domain.Coupon
	bookings map[uuid.UUID]domain.Booking
	outbox   []domain.OutboxEvent
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		hotels:   make(map[string]domain.HotelRateProfile, len(s.hotels)),
		rules:    make(map[string]domain.SeasonalRule, len(s.rules)),
		order:    append([]string(nil), s.order...),
		coupons:  make(map[string]domain.Coupon, len(s.coupons)),
		bookings: make(map[uuid.UUID]domain.Booking, len(s.bookings)),
		outbox:   append([]domain.OutboxEvent(nil), s.outbox...),
	}
	for k, v := range s.hotels {
		snap.hotels[k] = v
	}
	for k, v := range s.rules {
		snap.rules[k] = v
	}
	for k, v := range s.coupons {
		snap.coupons[k] = v
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = snap.hotels
	s.rules = snap.rules
	s.order = snap.order
	s.coupons = snap.coupons
	s.bookings = snap.bookings
	s.outbox = snap.outbox
}

type hotelRepo struct{ s *Store }

func (r hotelRepo) GetRateProfile(ctx context.Context, hotelID string) (domain.HotelRateProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.hotels[hotelID]
	if !ok {
		return domain.HotelRateProfile{}, domain.NewNotFoundError("hotel", hotelID)
	}
	return p, nil
}

func (r hotelRepo) UpsertRateProfile(ctx context.Context, profile domain.HotelRateProfile) error {
	if profile.HotelID == "" {
		return domain.NewInvalidInputError("hotel id is required", "")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	profile.UpdatedAt = r.s.now()
	r.s.hotels[profile.HotelID] = profile
	return nil
}

type ruleRepo struct{ s *Store }

func (r ruleRepo) ListByHotel(ctx context.Context, hotelID string) ([]domain.SeasonalRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.SeasonalRule, 0)
	for _, id := range r.s.order {
		if rule, exists := r.s.rules[id]; exists && rule.HotelID == hotelID {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r ruleRepo) ListForStay(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]domain.SeasonalRule, error) {
	all, err := r.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	from, to := domain.DateOf(checkIn), domain.DateOf(checkOut)
	out := all[:0]
	for _, rule := range all {
		if rule.StartDate.Before(to) && !rule.EndDate.Before(from) {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r ruleRepo) Upsert(ctx context.Context, rule domain.SeasonalRule) (domain.SeasonalRule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.upsertLocked(rule)
}

func (r ruleRepo) upsertLocked(rule domain.SeasonalRule) (domain.SeasonalRule, error) {
	if err := rule.Validate(); err != nil {
		return domain.SeasonalRule{}, err
	}
	if _, ok := r.s.hotels[rule.HotelID]; !ok {
		return domain.SeasonalRule{}, domain.NewNotFoundError("hotel", rule.HotelID)
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	now := r.s.now()
	if existing, exists := r.s.rules[rule.ID]; exists {
		rule.CreatedAt = existing.CreatedAt
	} else {
		r.s.order = append(r.s.order, rule.ID)
		if rule.CreatedAt.IsZero() {
			rule.CreatedAt = now
		}
	}
	rule.UpdatedAt = now
	r.s.rules[rule.ID] = rule
	return rule, nil
}

func (r ruleRepo) BulkUpsert(ctx context.Context, rules []domain.SeasonalRule) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return 0, err
		}
		if _, ok := r.s.hotels[rules[i].HotelID]; !ok {
			return 0, domain.NewNotFoundError("hotel", rules[i].HotelID)
		}
	}
	for _, rule := range rules {
		if _, err := r.upsertLocked(rule); err != nil {
			return 0, err
		}
	}
	return len(rules), nil
}

func (r ruleRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rules[id]; !ok {
		return domain.NewNotFoundError("seasonal rule", id)
	}
	for i, orderID := range r.s.order {
		if orderID == id {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	delete(r.s.rules, id)
	return nil
}

type couponRepo struct{ s *Store }

func (r couponRepo) GetByCode(ctx context.Context, code string) (domain.Coupon, error) {
	code = domain.NormalizeCouponCode(code)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.coupons[code]
	if !ok {
		return domain.Coupon{}, domain.NewNotFoundError("coupon", code)
	}
	return copyCoupon(c), nil
}

func (r couponRepo) Upsert(ctx context.Context, coupon domain.Coupon) error {
	if err := coupon.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if existing, ok := r.s.coupons[coupon.Code]; ok {
		coupon.CreatedAt = existing.CreatedAt
	} else if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = now
	}
	if coupon.ID == "" {
		coupon.ID = uuid.NewString()
	}
	coupon.UpdatedAt = now
	r.s.coupons[coupon.Code] = copyCoupon(coupon)
	return nil
}

func (r couponRepo) IncrementUses(ctx context.Context, code string) (domain.Coupon, error) {
	code = domain.NormalizeCouponCode(code)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.coupons[code]
	if !ok {
		return domain.Coupon{}, domain.NewNotFoundError("coupon", code)
	}
	if !c.Active || c.Exhausted() {
		return domain.Coupon{}, repository.ErrCouponExhausted
	}
	c.CurrentUses++
	c.UpdatedAt = r.s.now()
	r.s.coupons[code] = c
	return copyCoupon(c), nil
}

func copyCoupon(c domain.Coupon) domain.Coupon {
	if c.MaxUses != nil {
		max := *c.MaxUses
		c.MaxUses = &max
	}
	return c
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if _, exists := r.s.bookings[booking.ID]; exists {
		return domain.NewConflictError("booking already exists", booking.ID.String())
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = r.s.now()
	}
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return domain.Booking{}, domain.NewNotFoundError("booking", id.String())
	}
	return b, nil
}

// AllBookings returns every stored booking ordered by creation time.
func (s *Store) AllBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) Insert(ctx context.Context, e *domain.OutboxEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = r.s.now()
	stored := *e
	stored.Payload = append([]byte(nil), e.Payload...)
	r.s.outbox = append(r.s.outbox, stored)
	return nil
}

func (r outboxRepo) GetPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.OutboxEvent, 0)
	for _, e := range r.s.outbox {
		if len(out) == limit {
			break
		}
		if e.PublishedAt == nil && e.RetryCount < repository.MaxOutboxRetries {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r outboxRepo) MarkPublished(ctx context.Context, id string) error {
	return r.update(id, func(e *domain.OutboxEvent) {
		now := r.s.now()
		e.PublishedAt = &now
		e.ErrorMessage = ""
	})
}

func (r outboxRepo) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	return r.update(id, func(e *domain.OutboxEvent) {
		e.RetryCount++
		e.ErrorMessage = errorMessage
	})
}

func (r outboxRepo) update(id string, fn func(*domain.OutboxEvent)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.outbox {
		if r.s.outbox[i].ID == id {
			fn(&r.s.outbox[i])
			return nil
		}
	}
	return domain.NewNotFoundError("outbox event", id)
}

// OutboxEvents returns every outbox event in insertion order.
func (s *Store) OutboxEvents() []domain.OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.OutboxEvent(nil), s.outbox...)
}
