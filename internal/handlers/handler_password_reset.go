package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/dto"
	"github.com/minjaeoh/user_auth_app/internal/middleware"
)

// passwordResetHandler handles the reset request and consumption endpoints.
type passwordResetHandler struct {
	resetService portssvc.PasswordResetSvcFacade
}

func newPasswordResetHandler(rs portssvc.PasswordResetSvcFacade) *passwordResetHandler {
	return &passwordResetHandler{resetService: rs}
}

// registerPasswordResetRoutes sets up the public reset routes.
func registerPasswordResetRoutes(rg *gin.Engine, resetService portssvc.PasswordResetSvcFacade) {
	h := newPasswordResetHandler(resetService)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/reset-password", h.RequestReset)
		auth.POST("/update-password", h.ConsumeReset)
	}
}

// RequestReset godoc
// @Summary Request a password reset
// @Description Issues a single-use reset token valid for 1 hour and mails a reset link.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Social-login account"
// @Failure 401 {object} ErrorResponse "Unknown email"
// @Failure 502 {object} ErrorResponse "Mail delivery failed"
// @Router /auth/reset-password [post]
func (h *passwordResetHandler) RequestReset(c *gin.Context) {
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.resetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Reset request failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ConsumeReset godoc
// @Summary Set a new password with a reset token
// @Description Validates the new password, consumes the token and updates the stored hash. Tokens are single-use.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetConsumeRequest true "Token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid token or validation failed"
// @Router /auth/update-password [post]
func (h *passwordResetHandler) ConsumeReset(c *gin.Context) {
	var req dto.ResetConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.resetService.ConsumeReset(c.Request.Context(), req.Token, req.Password); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Reset consumption failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
