package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is lets errors.Is match any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Error codes. The first four are fatal to a pricing request.
const (
	ErrCodeInvalidDateRange   = "INVALID_DATE_RANGE"
	ErrCodeInvalidOccupancy   = "INVALID_OCCUPANCY"
	ErrCodeMissingRateProfile = "MISSING_RATE_PROFILE"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeInvalidCoupon      = "INVALID_COUPON"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidDateRange   = &DomainError{Code: ErrCodeInvalidDateRange}
	ErrInvalidOccupancy   = &DomainError{Code: ErrCodeInvalidOccupancy}
	ErrMissingRateProfile = &DomainError{Code: ErrCodeMissingRateProfile}
	ErrInvalidInput       = &DomainError{Code: ErrCodeInvalidInput}
	ErrInvalidCoupon      = &DomainError{Code: ErrCodeInvalidCoupon}
	ErrNotFound           = &DomainError{Code: ErrCodeNotFound}
	ErrConflict           = &DomainError{Code: ErrCodeConflict}
	ErrUnauthorized       = &DomainError{Code: ErrCodeUnauthorized}
)

// NewInvalidDateRangeError creates an error for a stay with checkOut <= checkIn
func NewInvalidDateRangeError(details string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidDateRange,
		Message: "check-out must be after check-in",
		Details: details,
	}
}

// NewInvalidOccupancyError creates an error for rooms or guests outside
// 1..MaxRooms and 1..MaxGuests
func NewInvalidOccupancyError(details string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidOccupancy,
		Message: "rooms and guests must be at least 1 and within the booking limits",
		Details: details,
	}
}

// NewMissingRateProfileError creates an error for a hotel without a base price
func NewMissingRateProfileError(hotelID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRateProfile,
		Message: "hotel has no base price configured",
		Details: fmt.Sprintf("hotel: %s", hotelID),
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message, details string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Details: details,
	}
}

// NewInvalidCouponError creates an error carrying a coupon rejection reason
func NewInvalidCouponError(code, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCoupon,
		Message: "coupon cannot be applied",
		Details: fmt.Sprintf("code: %s, reason: %s", code, reason),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Details: fmt.Sprintf("ID: %s", id),
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message, details string) *DomainError {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: details,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// GetDomainError extracts a domain error from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsFatalPricingError reports whether err aborts a pricing computation.
func IsFatalPricingError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidOccupancy),
		errors.Is(err, ErrMissingRateProfile):
		return true
	default:
		return false
	}
}
