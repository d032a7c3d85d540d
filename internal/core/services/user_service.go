package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/core/validation"
	"github.com/minjaeoh/user_auth_app/internal/dto"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user management service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser validates the form, rejects duplicate emails and creates a
// credential account with a hashed password. The pre-check read plus insert
// is not wrapped in a transaction; the store's unique constraint closes the
// remaining race window.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if errs := validation.SignUp(req.Name, req.Email, req.Password); errs.HasErrors() {
		return nil, errs
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, domain.NewUserData{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Provider:     domain.ProviderCredentials,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile patches only the supplied fields. A supplied password runs
// through the composition rules and is re-hashed before it reaches the store.
func (s *userService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error) {
	if errs := validation.ProfileUpdate(req.Name, req.Password); errs.HasErrors() {
		return nil, errs
	}

	patch := domain.UserPatch{Name: req.Name}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.userRepo.UpdateUser(ctx, email, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// SetPassword replaces the stored hash for an already-validated plaintext.
// Used by the password-reset flow after token consumption.
func (s *userService) SetPassword(ctx context.Context, userID int64, plaintext string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password update: %w", err)
	}

	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.UpdateUser(ctx, user.Email, domain.UserPatch{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, email string) error {
	if err := s.userRepo.DeleteUser(ctx, email); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
