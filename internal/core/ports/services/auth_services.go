package services

import (
	"context"
	"time"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthenticatorSvcFacade resolves submitted credentials or an external
// identity assertion to a canonical user record, or a typed failure.
type AuthenticatorSvcFacade interface {
	// AuthenticateCredentials verifies an email/password pair. Failure modes,
	// in check order: ErrUnknownEmail, ErrSocialOnlyAccount (before any hash
	// comparison), ErrInvalidPassword.
	AuthenticateCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// AuthenticateExternal creates or links an account for a verified
	// external identity. Store errors surface as ErrLinkFailure and the
	// attempt must be treated as failed.
	AuthenticateExternal(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error)
}

// SessionSvcFacade projects a user record onto session claims and mints the
// session token that carries them.
type SessionSvcFacade interface {
	// Project derives the minimal claim set from a user record.
	Project(user *domain.User) domain.Claims

	// IssueToken mints a signed session token for the user's claims,
	// returning the token and its expiry.
	IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// Refresh re-reads the user record and re-projects; this is the only
	// path by which a session's name claim changes after login.
	Refresh(ctx context.Context, userID int64) (*domain.User, string, time.Time, error)
}

// PasswordResetSvcFacade drives the reset-token lifecycle: issue on request,
// consume exactly once to set a new password.
type PasswordResetSvcFacade interface {
	// RequestReset mints and stores a reset token for the email's account and
	// dispatches the reset mail. ErrDeliveryFailure leaves the token valid.
	RequestReset(ctx context.Context, email string) error

	// ConsumeReset validates the new password, consumes the token and updates
	// the account's password hash.
	ConsumeReset(ctx context.Context, token, newPassword string) error
}

// MailSenderSvc delivers password-reset mails. Delivery transport is an
// external collaborator.
type MailSenderSvc interface {
	SendPasswordResetEmail(ctx context.Context, to, resetURL string) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// NaverOAuthHandlerSvcFacade defines the interface for Naver OAuth operations.
type NaverOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetNaverLoginURL returns the URL to redirect the user to for Naver login.
	GetNaverLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code, state string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to read the Naver profile.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.NaverUserInfo, error)
}
