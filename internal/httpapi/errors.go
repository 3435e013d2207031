package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/api"
	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/log"
)

// StatusFor maps a domain error code to an HTTP status
func StatusFor(code string) int {
	switch code {
	case domain.ErrCodeInvalidDateRange,
		domain.ErrCodeInvalidOccupancy,
		domain.ErrCodeInvalidInput,
		domain.ErrCodeInvalidCoupon:
		return http.StatusBadRequest
	case domain.ErrCodeMissingRateProfile:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeConflict:
		return http.StatusConflict
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error api.ErrorBody `json:"error"`
}

func abortWithError(c *gin.Context, err error) {
	body := api.NewErrorBody(err)
	if domain.GetDomainError(err) == nil {
		log.Error(c.Request.Context(), "Unhandled error in HTTP handler",
			zap.String("route", c.FullPath()),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(StatusFor(body.Code), errorResponse{Error: body})
}

// bindJSON decodes the body, reporting malformed JSON as invalid input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, domain.NewInvalidInputError("request body is not valid JSON", err.Error()))
		return false
	}
	return true
}
