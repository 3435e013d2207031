package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/staylane/pricingservice/internal/domain"
)

const insertBookingSQL = `
INSERT INTO bookings (id, hotel_id, guest_id, check_in, check_out, rooms, guests, coupon_code,
                      subtotal_before_discount, discount_amount, tax_percentage, total_amount,
                      currency, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, now())
RETURNING created_at`

const selectBookingSQL = `
SELECT id, hotel_id, guest_id, check_in, check_out, rooms, guests, COALESCE(coupon_code, ''),
       subtotal_before_discount, discount_amount, tax_percentage, total_amount,
       currency, status, created_at
FROM bookings
WHERE id = $1`

// bookingRepository implements repository.BookingRepository
type bookingRepository struct {
	db DBTX
}

// Create stores a confirmed booking. Amounts are written exactly as priced.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	defer timed("bookings.create")()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, insertBookingSQL,
		b.ID,
		b.HotelID,
		b.GuestID,
		domain.DateOf(b.Stay.CheckIn),
		domain.DateOf(b.Stay.CheckOut),
		b.Stay.Rooms,
		b.Stay.Guests,
		b.CouponCode,
		b.SubtotalBeforeDiscount,
		b.DiscountAmount,
		b.TaxPercentage,
		b.TotalAmount,
		b.Currency,
		string(b.Status),
	).Scan(&b.CreatedAt)
	if isUniqueViolation(err) {
		return domain.NewConflictError("booking already exists", b.ID.String())
	}
	if isForeignKeyViolation(err) {
		return domain.NewNotFoundError("hotel", b.HotelID)
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking
func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	defer timed("bookings.get")()

	var (
		b      domain.Booking
		status string
	)
	err := r.db.QueryRow(ctx, selectBookingSQL, id).Scan(
		&b.ID,
		&b.HotelID,
		&b.GuestID,
		&b.Stay.CheckIn,
		&b.Stay.CheckOut,
		&b.Stay.Rooms,
		&b.Stay.Guests,
		&b.CouponCode,
		&b.SubtotalBeforeDiscount,
		&b.DiscountAmount,
		&b.TaxPercentage,
		&b.TotalAmount,
		&b.Currency,
		&status,
		&b.CreatedAt,
	)
	if isNoRows(err) {
		return domain.Booking{}, domain.NewNotFoundError("booking", id.String())
	}
	if err != nil {
		return domain.Booking{}, fmt.Errorf("failed to get booking %s: %w", id, err)
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}
