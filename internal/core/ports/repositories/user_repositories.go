package repositories

import (
	"context"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves a user by email, the stable lookup key.
	// Returns apperrors.ErrNotFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID retrieves a user by their generated id.
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser inserts a new user and returns the stored record with its
	// generated id. Returns apperrors.ErrDuplicateEmail when the email is
	// already registered.
	CreateUser(ctx context.Context, data domain.NewUserData) (*domain.User, error)

	// UpdateUser applies a partial patch to the user with the given email;
	// nil patch fields keep their prior values. Password values must be
	// pre-hashed by the caller.
	UpdateUser(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error)
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// DeleteUser removes the user record for the given email.
	DeleteUser(ctx context.Context, email string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
