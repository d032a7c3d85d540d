package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// writeError maps a service error to its HTTP response. Validation failures
// are always returned as structured per-field messages; the discriminated
// auth failures keep distinct messages so the frontend can phrase each case.
func writeError(c *gin.Context, err error) {
	var validationErrs apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: validationErrs})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnknownEmail):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account registered for this email"})
	case errors.Is(err, apperrors.ErrSocialOnlyAccount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "This account uses social login"})
	case errors.Is(err, apperrors.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Password does not match"})
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidOrExpiredToken):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired reset token"})
	case errors.Is(err, apperrors.ErrLinkFailure):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to link social identity"})
	case errors.Is(err, apperrors.ErrDeliveryFailure):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to send reset email"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
