package pricing

import "github.com/shopspring/decimal"

// ExtraGuests is the number of guests above rooms*maxGuestsPerRoom.
func ExtraGuests(guests, rooms, maxGuestsPerRoom int) int {
	extra := guests - rooms*maxGuestsPerRoom
	if extra < 0 {
		return 0
	}
	return extra
}

// ExtraGuestCharge is a flat per-night surcharge for guests over capacity.
// It ignores seasonal rules: every night is charged the same extra price.
func ExtraGuestCharge(guests, rooms, maxGuestsPerRoom int, extraGuestPricePerNight decimal.Decimal, nights int) decimal.Decimal {
	extra := ExtraGuests(guests, rooms, maxGuestsPerRoom)
	if extra == 0 || nights <= 0 {
		return decimal.Zero
	}
	return Round2(extraGuestPricePerNight.
		Mul(decimal.NewFromInt(int64(extra))).
		Mul(decimal.NewFromInt(int64(nights))))
}
