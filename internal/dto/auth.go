package dto

import (
	"time"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
)

// LoginRequest carries the password variant of authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login or session
// refresh: the session token, its expiry and the projected claims.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Claims    domain.Claims `json:"claims"`
}

// ResetRequest asks for a password-reset mail.
type ResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetConsumeRequest redeems a reset token for a new password.
type ResetConsumeRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordCandidateResponse returns a generated password suggestion.
type PasswordCandidateResponse struct {
	Password string `json:"password"`
}
