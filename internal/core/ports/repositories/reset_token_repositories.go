package repositories

import (
	"context"
	"time"
)

// ResetTokenRepositoryFacade persists password-reset tokens. Tokens are
// single-use: consumption deletes the row in the same statement that
// verifies it.
type ResetTokenRepositoryFacade interface {
	// CreateResetToken stores a token for the user with the given expiry.
	CreateResetToken(ctx context.Context, userID int64, token string, expires time.Time) error

	// VerifyAndConsumeResetToken atomically deletes the row matching an
	// unexpired token and returns the associated user id. Absent or expired
	// tokens yield apperrors.ErrNotFound with nothing deleted.
	VerifyAndConsumeResetToken(ctx context.Context, token string) (int64, error)

	// DeleteExpiredTokens removes all rows past their expiry, returning the
	// count removed. Invoked opportunistically, never on the consume path.
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
