package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	"github.com/minjaeoh/user_auth_app/internal/models"
)

type PgxUserRepository struct {
	db DBConn
}

func newPgxUserRepository(db DBConn) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// NewPgxUserRepository is the exported constructor, used directly in tests.
func NewPgxUserRepository(db DBConn) portsrepo.UserRepositoryFacade {
	return newPgxUserRepository(db)
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = "id, email, name, password, social_id, image, provider, created_at"

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.Password.String,
		SocialID:     m.SocialID.String,
		Image:        m.Image.String,
		Provider:     domain.Provider(m.Provider),
		CreatedAt:    m.CreatedAt,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Email,
		&m.Name,
		&m.Password,
		&m.SocialID,
		&m.Image,
		&m.Provider,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find user by email: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find user by id %d: %v", apperrors.ErrStoreUnavailable, id, err)
	}
	return user, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, data domain.NewUserData) (*domain.User, error) {
	query := fmt.Sprintf(`
        INSERT INTO users (email, name, password, social_id, image, provider)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s;
    `, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query,
		data.Email,
		data.Name,
		nullable(data.PasswordHash),
		nullable(data.SocialID),
		nullable(data.Image),
		string(data.Provider),
	))
	if err != nil {
		// The unique constraint is the last line of defense against the
		// duplicate-registration race; it must not surface as a generic fault.
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: failed to create user: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

// UpdateUser patches only the supplied fields, mirroring the partial-update
// contract: nil fields keep their stored values.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error) {
	sets := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+arg(*patch.Name))
	}
	if patch.ClearPassword {
		sets = append(sets, "password = NULL")
	} else if patch.PasswordHash != nil {
		sets = append(sets, "password = "+arg(*patch.PasswordHash))
	}
	if patch.SocialID != nil {
		sets = append(sets, "social_id = "+arg(*patch.SocialID))
	}
	if patch.Image != nil {
		sets = append(sets, "image = "+arg(*patch.Image))
	}
	if patch.Provider != nil {
		sets = append(sets, "provider = "+arg(string(*patch.Provider)))
	}

	if len(sets) == 0 {
		return r.FindUserByEmail(ctx, email)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE email = %s RETURNING %s;`,
		strings.Join(sets, ", "), arg(email), userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: failed to update user: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, email string) error {
	query := `DELETE FROM users WHERE email = $1;`
	cmdTag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("%w: failed to delete user: %v", apperrors.ErrStoreUnavailable, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
