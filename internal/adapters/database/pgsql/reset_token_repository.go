package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
)

type PgxResetTokenRepository struct {
	db DBConn
}

func newPgxResetTokenRepository(db DBConn) portsrepo.ResetTokenRepositoryFacade {
	return &PgxResetTokenRepository{db: db}
}

// NewPgxResetTokenRepository is the exported constructor, used directly in tests.
func NewPgxResetTokenRepository(db DBConn) portsrepo.ResetTokenRepositoryFacade {
	return newPgxResetTokenRepository(db)
}

var _ portsrepo.ResetTokenRepositoryFacade = (*PgxResetTokenRepository)(nil)

func (r *PgxResetTokenRepository) CreateResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	query := `
        INSERT INTO password_reset_tokens (user_id, token, expires)
        VALUES ($1, $2, $3);
    `
	if _, err := r.db.Exec(ctx, query, userID, token, expires); err != nil {
		return fmt.Errorf("%w: failed to create reset token: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// VerifyAndConsumeResetToken deletes and returns in one statement so the
// token cannot be redeemed twice. Expired rows are left in place; they never
// match the expires guard and are swept by DeleteExpiredTokens.
func (r *PgxResetTokenRepository) VerifyAndConsumeResetToken(ctx context.Context, token string) (int64, error) {
	query := `
        DELETE FROM password_reset_tokens
        WHERE token = $1 AND expires > now()
        RETURNING user_id;
    `
	var userID int64
	err := r.db.QueryRow(ctx, query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("%w: failed to consume reset token: %v", apperrors.ErrStoreUnavailable, err)
	}
	return userID, nil
}

func (r *PgxResetTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	query := `DELETE FROM password_reset_tokens WHERE expires <= now();`
	cmdTag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete expired reset tokens: %v", apperrors.ErrStoreUnavailable, err)
	}
	return cmdTag.RowsAffected(), nil
}
