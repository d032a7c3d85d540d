package services

import (
	"context"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	"github.com/minjaeoh/user_auth_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser validates and creates a credential account, hashing the
	// password before it reaches the store.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile applies a partial profile patch; a supplied password is
	// validated and re-hashed.
	UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error)

	// SetPassword replaces the account's password hash. Used by the
	// password-reset flow with an already-validated plaintext.
	SetPassword(ctx context.Context, userID int64, plaintext string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes the account registered for the email.
	DeleteUser(ctx context.Context, email string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
