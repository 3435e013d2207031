package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staylane/pricingservice/internal/booking"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/ratelimit"
	"github.com/staylane/pricingservice/internal/repository/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticValidator map[string]string

func (v staticValidator) Validate(ctx context.Context, token string) (string, error) {
	if guest, ok := v[token]; ok {
		return guest, nil
	}
	return "", domain.NewUnauthorizedError("token is invalid")
}

type fakeChecker struct{ err error }

func (f fakeChecker) Ping(ctx context.Context) error { return f.err }

func newRouter(t *testing.T, opts RouterOptions, checks map[string]HealthChecker) *gin.Engine {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Hotels().UpsertRateProfile(context.Background(), domain.HotelRateProfile{
		HotelID:                 "hotel-1",
		BasePricePerNight:       decimal.NewNullDecimal(decimal.NewFromInt(500)),
		MaxGuestsPerRoom:        2,
		ExtraGuestPricePerNight: decimal.NewFromInt(100),
		TaxPercentage:           decimal.NewFromInt(15),
		Currency:                "THB",
	}))
	svc := booking.NewService(store, store, nil, booking.Options{})
	if opts.Validator == nil {
		opts.Validator = staticValidator{"good-token": "guest-1", "other-token": "guest-2"}
	}
	return NewRouter(NewHandler(svc, checks), opts)
}

func do(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var stay = map[string]interface{}{
	"hotel_id":  "hotel-1",
	"check_in":  "2025-07-10",
	"check_out": "2025-07-13",
	"rooms":     1,
	"guests":    3,
}

func TestQuoteEndpoint(t *testing.T) {
	r := newRouter(t, RouterOptions{}, nil)

	w := do(r, http.MethodPost, "/api/v1/quotes", "", stay)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	b := decode(t, w)["breakdown"].(map[string]interface{})
	assert.Equal(t, "300.00", b["extra_guest_charge"])
	assert.Equal(t, "2070.00", b["total_amount"])
	assert.Equal(t, []interface{}{"500.00", "500.00", "500.00"}, b["per_night_amounts"])
}

func TestQuoteEndpoint_Errors(t *testing.T) {
	r := newRouter(t, RouterOptions{}, nil)

	tests := []struct {
		name string
		body interface{}
		want int
		code string
	}{
		{"malformed body", "not an object", http.StatusBadRequest, domain.ErrCodeInvalidInput},
		{"bad date", map[string]interface{}{"hotel_id": "hotel-1", "check_in": "10/07/2025", "check_out": "2025-07-13", "rooms": 1, "guests": 1}, http.StatusBadRequest, domain.ErrCodeInvalidInput},
		{"inverted dates", map[string]interface{}{"hotel_id": "hotel-1", "check_in": "2025-07-13", "check_out": "2025-07-10", "rooms": 1, "guests": 1}, http.StatusBadRequest, domain.ErrCodeInvalidDateRange},
		{"no rooms", map[string]interface{}{"hotel_id": "hotel-1", "check_in": "2025-07-10", "check_out": "2025-07-13", "rooms": 0, "guests": 1}, http.StatusBadRequest, domain.ErrCodeInvalidOccupancy},
		{"unknown hotel", map[string]interface{}{"hotel_id": "nope", "check_in": "2025-07-10", "check_out": "2025-07-13", "rooms": 1, "guests": 1}, http.StatusNotFound, domain.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/quotes", "", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			errBody := decode(t, w)["error"].(map[string]interface{})
			assert.Equal(t, tt.code, errBody["code"])
		})
	}
}

func TestSearchEndpoint(t *testing.T) {
	r := newRouter(t, RouterOptions{}, nil)

	w := do(r, http.MethodPost, "/api/v1/search", "", map[string]interface{}{
		"hotel_ids": []string{"nope", "hotel-1"},
		"check_in":  "2025-07-10",
		"check_out": "2025-07-11",
		"rooms":     1,
		"guests":    2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	results := decode(t, w)["results"].([]interface{})
	require.Len(t, results, 2)
	assert.Equal(t, "hotel-1", results[0].(map[string]interface{})["hotel_id"])
	assert.Equal(t, "nope", results[1].(map[string]interface{})["hotel_id"])
	assert.Contains(t, results[1].(map[string]interface{}), "error")
}

func TestBookingAndReceiptEndpoints(t *testing.T) {
	r := newRouter(t, RouterOptions{}, nil)

	w := do(r, http.MethodPost, "/api/v1/bookings", "", stay)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/bookings", "bad-token", stay)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/bookings", "good-token", stay)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	conf := decode(t, w)
	assert.Equal(t, "2070.00", conf["total_amount"])
	id := conf["booking_id"].(string)

	w = do(r, http.MethodGet, "/api/v1/bookings/"+id+"/receipt", "good-token", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	receipt := decode(t, w)
	assert.Equal(t, "1800.00", receipt["subtotal_before_tax"])
	assert.Equal(t, "270.00", receipt["tax_amount"])
	assert.Equal(t, float64(3), receipt["nights"])

	w = do(r, http.MethodGet, "/api/v1/bookings/"+id+"/receipt", "other-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/bookings/not-a-uuid/receipt", "good-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouter(t, RouterOptions{}, map[string]HealthChecker{"postgres": fakeChecker{}})
	w := do(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	r = newRouter(t, RouterOptions{}, map[string]HealthChecker{
		"postgres": fakeChecker{},
		"redis":    fakeChecker{err: errors.New("connection refused")},
	})
	w = do(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	assert.Equal(t, "degraded", body["status"])
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	limiter := ratelimit.NewRedisRateLimiter(client, ratelimit.Config{Enabled: true, RequestsPerMinute: 1}, nil)

	r := newRouter(t, RouterOptions{RateLimiter: limiter}, nil)

	w := do(r, http.MethodPost, "/api/v1/quotes", "", stay)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/v1/quotes", "", stay)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t, RouterOptions{AllowedOrigins: []string{"https://shop.example.com"}}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/quotes", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(domain.ErrCodeMissingRateProfile))
	assert.Equal(t, http.StatusConflict, StatusFor(domain.ErrCodeConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("SOMETHING_ELSE"))
}
