package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/dto"
	"github.com/minjaeoh/user_auth_app/internal/middleware"
	"github.com/minjaeoh/user_auth_app/internal/platform/config"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// AuthHandler handles registration, credential login and session lifecycle.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	authenticator portssvc.AuthenticatorSvcFacade
	session       portssvc.SessionSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, auth portssvc.AuthenticatorSvcFacade, session portssvc.SessionSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:   us,
		authenticator: auth,
		session:       session,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Authenticator, services.Session)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/password-candidate", h.PasswordCandidate)
		auth.POST("/session/refresh", middleware.AuthMiddleware(cfg.JWTSecret), h.RefreshSession)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new credential account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Registration failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a session token with its claims.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.authenticator.AuthenticateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, expiry, err := h.session.IssueToken(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiry,
		Claims:    h.session.Project(user),
	})
}

// Logout godoc
// @Summary Sign out
// @Description Ends the session. Tokens are stateless, so the client discards its copy.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// RefreshSession godoc
// @Summary Refresh session claims
// @Description Re-reads the user record and issues a fresh token. The only way a session's name claim changes.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session/refresh [post]
func (h *AuthHandler) RefreshSession(c *gin.Context) {
	subject, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token claims"})
		return
	}

	user, token, expiry, err := h.session.Refresh(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiry,
		Claims:    h.session.Project(user),
	})
}

// PasswordCandidate godoc
// @Summary Suggest a password
// @Description Returns a generated password meeting the composition policy. UI convenience only.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.PasswordCandidateResponse
// @Router /auth/password-candidate [get]
func (h *AuthHandler) PasswordCandidate(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PasswordCandidateResponse{Password: utils.GeneratePasswordCandidate()})
}
