package postgres

// Schema is applied by Migrate. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS hotels (
    id                          TEXT PRIMARY KEY,
    name                        TEXT NOT NULL DEFAULT '',
    base_price_per_night        NUMERIC(12,2) CHECK (base_price_per_night >= 0),
    max_guests_per_room         INTEGER NOT NULL DEFAULT 2 CHECK (max_guests_per_room BETWEEN 1 AND 100),
    extra_guest_price_per_night NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (extra_guest_price_per_night >= 0),
    tax_percentage              NUMERIC(6,3) NOT NULL DEFAULT 0 CHECK (tax_percentage >= 0),
    currency                    TEXT NOT NULL DEFAULT 'THB',
    updated_at                  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seasonal_rules (
    id               TEXT PRIMARY KEY,
    hotel_id         TEXT NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
    start_date       DATE NOT NULL,
    end_date         DATE NOT NULL,
    override_price   NUMERIC(12,2) CHECK (override_price >= 0),
    price_multiplier NUMERIC(8,4) CHECK (price_multiplier >= 0),
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CHECK (end_date >= start_date),
    CHECK ((override_price IS NULL) <> (price_multiplier IS NULL))
);

CREATE INDEX IF NOT EXISTS seasonal_rules_hotel_dates_idx
    ON seasonal_rules (hotel_id, start_date, end_date);

CREATE TABLE IF NOT EXISTS coupons (
    id                 TEXT PRIMARY KEY,
    code               TEXT NOT NULL UNIQUE,
    discount_type      TEXT NOT NULL CHECK (discount_type IN ('percentage', 'fixed')),
    discount_value     NUMERIC(12,2) NOT NULL CHECK (discount_value >= 0),
    valid_from         TIMESTAMPTZ NOT NULL,
    valid_to           TIMESTAMPTZ NOT NULL,
    max_uses           INTEGER CHECK (max_uses >= 0),
    current_uses       INTEGER NOT NULL DEFAULT 0 CHECK (current_uses >= 0),
    min_booking_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
    active             BOOLEAN NOT NULL DEFAULT TRUE,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    CHECK (valid_to >= valid_from),
    CHECK (max_uses IS NULL OR current_uses <= max_uses)
);

CREATE TABLE IF NOT EXISTS bookings (
    id                       UUID PRIMARY KEY,
    hotel_id                 TEXT NOT NULL REFERENCES hotels(id),
    guest_id                 TEXT NOT NULL,
    check_in                 DATE NOT NULL,
    check_out                DATE NOT NULL,
    rooms                    INTEGER NOT NULL,
    guests                   INTEGER NOT NULL,
    coupon_code              TEXT,
    subtotal_before_discount NUMERIC(12,2) NOT NULL,
    discount_amount          NUMERIC(12,2) NOT NULL,
    tax_percentage           NUMERIC(6,3) NOT NULL,
    total_amount             NUMERIC(12,2) NOT NULL,
    currency                 TEXT NOT NULL,
    status                   TEXT NOT NULL,
    created_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS bookings_guest_idx ON bookings (guest_id, created_at DESC);

CREATE TABLE IF NOT EXISTS outbox (
    id            UUID PRIMARY KEY,
    event_type    TEXT NOT NULL,
    partition_key TEXT NOT NULL DEFAULT '',
    payload       JSONB NOT NULL,
    retry_count   INTEGER NOT NULL DEFAULT 0,
    error_message TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    published_at  TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS outbox_pending_idx ON outbox (created_at) WHERE published_at IS NULL;
`
