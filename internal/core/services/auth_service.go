package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// authenticatorService resolves credentials or an external-identity
// assertion to a canonical user record. It holds no state beyond the
// repository; every call re-reads the store as source of truth.
type authenticatorService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthenticatorService creates the credential/external-identity authenticator.
func NewAuthenticatorService(userRepo portsrepo.UserRepositoryFacade) portssvc.AuthenticatorSvcFacade {
	return &authenticatorService{userRepo: userRepo}
}

var _ portssvc.AuthenticatorSvcFacade = (*authenticatorService)(nil)

// AuthenticateCredentials verifies an email/password pair. The social-only
// check runs before any hash comparison so a social account is never
// reported as a wrong password.
func (s *authenticatorService) AuthenticateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.IsSocialOnly() {
		return nil, apperrors.ErrSocialOnlyAccount
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}

// AuthenticateExternal creates an account for a first-time external identity
// or links the identity to the existing account for the same email. Linking
// revokes password login by clearing the stored hash; the stored display
// name wins over the asserted one to avoid surprise renames on re-link.
func (s *authenticatorService) AuthenticateExternal(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			user, createErr := s.userRepo.CreateUser(ctx, domain.NewUserData{
				Email:    identity.Email,
				Name:     identity.Name,
				SocialID: identity.ExternalID,
				Image:    identity.Image,
				Provider: identity.Provider,
			})
			if createErr != nil {
				return nil, fmt.Errorf("%w: creating account for external identity: %v", apperrors.ErrLinkFailure, createErr)
			}
			return user, nil
		}
		return nil, fmt.Errorf("%w: looking up account for external identity: %v", apperrors.ErrLinkFailure, err)
	}

	// Name is deliberately absent from the patch: existing.Name is kept.
	patch := domain.UserPatch{
		SocialID:      &identity.ExternalID,
		Image:         &identity.Image,
		Provider:      &identity.Provider,
		ClearPassword: true,
	}
	user, err := s.userRepo.UpdateUser(ctx, existing.Email, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: linking external identity: %v", apperrors.ErrLinkFailure, err)
	}
	return user, nil
}
