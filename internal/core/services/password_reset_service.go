package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/core/validation"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// Reset tokens live for one hour from issuance.
const resetTokenTTL = time.Hour

// Token entropy: 32 random bytes, hex encoded.
const resetTokenBytes = 32

// passwordResetService drives the Issued -> {Consumed, Expired} lifecycle of
// reset tokens. Expiry is enforced at read time; there is no background sweep.
type passwordResetService struct {
	userRepo        portsrepo.UserRepositoryFacade
	tokenRepo       portsrepo.ResetTokenRepositoryFacade
	userService     portssvc.UserWriterSvc
	mailer          portssvc.MailSenderSvc
	frontendBaseURL string
}

// NewPasswordResetService creates the password-reset flow service.
func NewPasswordResetService(
	userRepo portsrepo.UserRepositoryFacade,
	tokenRepo portsrepo.ResetTokenRepositoryFacade,
	userService portssvc.UserWriterSvc,
	mailer portssvc.MailSenderSvc,
	frontendBaseURL string,
) portssvc.PasswordResetSvcFacade {
	return &passwordResetService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		userService:     userService,
		mailer:          mailer,
		frontendBaseURL: frontendBaseURL,
	}
}

var _ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)

// RequestReset issues a token for the email's account and dispatches the
// reset mail. Reset is credential-login-only. A delivery failure is reported
// but does not roll back the token: it stays redeemable for its full TTL.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnknownEmail
		}
		return fmt.Errorf("failed to look up user for reset request: %w", err)
	}

	if user.Provider != domain.ProviderCredentials {
		return apperrors.ErrSocialOnlyAccount
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(resetTokenTTL)
	if err := s.tokenRepo.CreateResetToken(ctx, user.ID, token, expires); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendBaseURL, token)
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, resetURL); err != nil {
		if errors.Is(err, apperrors.ErrDeliveryFailure) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrDeliveryFailure, err)
	}
	return nil
}

// ConsumeReset redeems a token for a new password. The token is consumed
// atomically on match; absent or expired tokens leave the store untouched
// apart from an opportunistic sweep of expired rows.
func (s *passwordResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	if errs := validation.ResetPassword(newPassword); errs.HasErrors() {
		return errs
	}

	userID, err := s.tokenRepo.VerifyAndConsumeResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.sweepExpired(ctx)
			return apperrors.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to verify reset token: %w", err)
	}

	if err := s.userService.SetPassword(ctx, userID, newPassword); err != nil {
		return fmt.Errorf("failed to set new password: %w", err)
	}
	return nil
}

// sweepExpired lazily removes expired token rows. Best effort: a failure
// only costs storage, never correctness, so it is logged and dropped.
func (s *passwordResetService) sweepExpired(ctx context.Context) {
	if _, err := s.tokenRepo.DeleteExpiredTokens(ctx); err != nil {
		slog.WarnContext(ctx, "failed to sweep expired reset tokens", slog.String("error", err.Error()))
	}
}
