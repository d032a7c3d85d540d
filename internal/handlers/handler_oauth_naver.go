package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/dto"
	"github.com/minjaeoh/user_auth_app/internal/middleware"
)

// NaverOAuthHandler handles Naver OAuth related requests. Unlike Google,
// Naver issues no ID token; user identity comes from the profile API.
type NaverOAuthHandler struct {
	naverOAuthService portssvc.NaverOAuthHandlerSvcFacade
	authenticator     portssvc.AuthenticatorSvcFacade
	session           portssvc.SessionSvcFacade
}

// NewNaverOAuthHandler creates a new instance of NaverOAuthHandler.
func NewNaverOAuthHandler(
	naverOAuthService portssvc.NaverOAuthHandlerSvcFacade,
	authenticator portssvc.AuthenticatorSvcFacade,
	session portssvc.SessionSvcFacade,
) *NaverOAuthHandler {
	return &NaverOAuthHandler{
		naverOAuthService: naverOAuthService,
		authenticator:     authenticator,
		session:           session,
	}
}

// LoginURLNaver godoc
// @Summary Get the Naver authorization URL
// @Description Returns the Naver login URL together with a fresh CSRF state value.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /naver/login-url [get]
func (h *NaverOAuthHandler) LoginURLNaver(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.naverOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Naver login"})
		return
	}

	c.JSON(http.StatusOK, LoginURLResponse{
		URL:   h.naverOAuthService.GetNaverLoginURL(ctx, state),
		State: state,
	})
}

// ExchangeCodeNaver exchanges a Naver authorization code for a session token.
// @Summary Exchange a Naver authorization code for a session token
// @Description Exchange authorization code for a session token
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code and state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 502 {object} ErrorResponse "Account store unreachable"
// @Router /naver/exchange-code [post]
func (h *NaverOAuthHandler) ExchangeCodeNaver(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	oauth2Token, err := h.naverOAuthService.ExchangeCodeForToken(ctx, req.Code, req.State)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Naver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Naver OAuth service."})
		return
	}

	info, err := h.naverOAuthService.GetUserInfo(ctx, oauth2Token)
	if err != nil {
		logger.Error("Failed to read Naver profile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to read Naver profile."})
		return
	}

	profile := info.Response
	if profile.Email == "" || profile.ID == "" {
		logger.Error("Essential fields missing from Naver profile", slog.String("result_code", info.ResultCode))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Essential user information missing from Naver profile."})
		return
	}

	user, err := h.authenticator.AuthenticateExternal(ctx, domain.ExternalIdentity{
		Provider:   domain.ProviderNaver,
		ExternalID: profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
		Image:      profile.ProfileImage,
	})
	if err != nil {
		logger.Error("Failed to create or link Naver account", slog.String("error", err.Error()), slog.String("naver_user_id", profile.ID))
		writeError(c, err)
		return
	}

	token, expiresAt, err := h.session.IssueToken(ctx, user)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate session token."})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Claims:    h.session.Project(user),
	})
}

// registerNaverOAuthRoutes registers the Naver OAuth routes.
func registerNaverOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewNaverOAuthHandler(services.NaverOAuthHandler, services.Authenticator, services.Session)
	naverRoutes := rg.Group("/api/v1/auth/naver")
	{
		naverRoutes.GET("/login-url", h.LoginURLNaver)
		naverRoutes.POST("/exchange-code", h.ExchangeCodeNaver)
	}
}
