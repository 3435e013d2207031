package httpapi

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staylane/pricingservice/internal/api"
	"github.com/staylane/pricingservice/internal/booking"
	"github.com/staylane/pricingservice/internal/log"
)

// HealthChecker is a dependency reported by /healthz
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler serves the REST API from the booking service
type Handler struct {
	bookings *booking.Service
	checks   map[string]HealthChecker
}

// NewHandler creates a handler
func NewHandler(bookings *booking.Service, checks map[string]HealthChecker) *Handler {
	return &Handler{bookings: bookings, checks: checks}
}

func (h *Handler) quote(c *gin.Context) {
	var req api.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := req.ToQuote()
	if err != nil {
		abortWithError(c, err)
		return
	}
	b, err := h.bookings.Quote(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.QuoteResponse{Breakdown: b})
}

func (h *Handler) search(c *gin.Context) {
	var req api.SearchRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := req.ToSearch()
	if err != nil {
		abortWithError(c, err)
		return
	}
	results, err := h.bookings.Search(c.Request.Context(), s)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewSearchResponse(results))
}

func (h *Handler) confirm(c *gin.Context) {
	var req api.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := req.ToQuote()
	if err != nil {
		abortWithError(c, err)
		return
	}
	ctx := c.Request.Context()
	conf, err := h.bookings.Confirm(ctx, booking.ConfirmRequest{QuoteRequest: q, GuestID: log.GuestID(ctx)})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.NewConfirmResponse(conf))
}

func (h *Handler) receipt(c *gin.Context) {
	id, err := api.ParseBookingID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ctx := c.Request.Context()
	if _, err := h.bookings.Booking(ctx, id, log.GuestID(ctx)); err != nil {
		abortWithError(c, err)
		return
	}
	r, err := h.bookings.Receipt(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewReceiptResponse(r))
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	deps := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "dependencies": deps})
}
