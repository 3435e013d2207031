package postgres

import (
	"context"
	"fmt"

	"github.com/staylane/pricingservice/internal/domain"
)

const selectHotelSQL = `
SELECT id, name, base_price_per_night, max_guests_per_room,
       extra_guest_price_per_night, tax_percentage, currency, updated_at
FROM hotels
WHERE id = $1`

const upsertHotelSQL = `
INSERT INTO hotels (id, name, base_price_per_night, max_guests_per_room,
                    extra_guest_price_per_night, tax_percentage, currency, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    base_price_per_night = EXCLUDED.base_price_per_night,
    max_guests_per_room = EXCLUDED.max_guests_per_room,
    extra_guest_price_per_night = EXCLUDED.extra_guest_price_per_night,
    tax_percentage = EXCLUDED.tax_percentage,
    currency = EXCLUDED.currency,
    updated_at = now()`

// hotelRepository implements repository.HotelRepository
type hotelRepository struct {
	db DBTX
}

// GetRateProfile retrieves a hotel's pricing settings
func (r *hotelRepository) GetRateProfile(ctx context.Context, hotelID string) (domain.HotelRateProfile, error) {
	defer timed("hotels.get")()

	var p domain.HotelRateProfile
	err := r.db.QueryRow(ctx, selectHotelSQL, hotelID).Scan(
		&p.HotelID,
		&p.Name,
		&p.BasePricePerNight,
		&p.MaxGuestsPerRoom,
		&p.ExtraGuestPricePerNight,
		&p.TaxPercentage,
		&p.Currency,
		&p.UpdatedAt,
	)
	if isNoRows(err) {
		return domain.HotelRateProfile{}, domain.NewNotFoundError("hotel", hotelID)
	}
	if err != nil {
		return domain.HotelRateProfile{}, fmt.Errorf("failed to get hotel %s: %w", hotelID, err)
	}
	return p, nil
}

// UpsertRateProfile creates or replaces a hotel's pricing settings
func (r *hotelRepository) UpsertRateProfile(ctx context.Context, p domain.HotelRateProfile) error {
	defer timed("hotels.upsert")()

	if p.HotelID == "" {
		return domain.NewInvalidInputError("hotel id is required", "")
	}
	_, err := r.db.Exec(ctx, upsertHotelSQL,
		p.HotelID,
		p.Name,
		p.BasePricePerNight,
		p.MaxGuestsPerRoom,
		p.ExtraGuestPricePerNight,
		p.TaxPercentage,
		p.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hotel %s: %w", p.HotelID, err)
	}
	return nil
}
