package pgsql_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjaeoh/user_auth_app/internal/adapters/database/pgsql"
	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
)

var userCols = []string{"id", "email", "name", "password", "social_id", "image", "provider", "created_at"}

func userRow(id int64, email, name, password, socialID, image, provider string, createdAt time.Time) *pgxmock.Rows {
	null := func(s string) sql.NullString {
		return sql.NullString{String: s, Valid: s != ""}
	}
	return pgxmock.NewRows(userCols).
		AddRow(id, email, name, null(password), null(socialID), null(image), provider, createdAt)
}

func TestPgxUserRepository_FindUserByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantUser  *domain.User
		wantErr   error
	}{
		{
			name: "credential user found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("test@example.com").
					WillReturnRows(userRow(1, "test@example.com", "Test User", "$2a$10$hash", "", "", "credentials", now))
			},
			wantUser: &domain.User{
				ID:           1,
				Email:        "test@example.com",
				Name:         "Test User",
				PasswordHash: "$2a$10$hash",
				Provider:     domain.ProviderCredentials,
				CreatedAt:    now,
			},
		},
		{
			name: "social user has empty password hash",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("social@example.com").
					WillReturnRows(userRow(2, "social@example.com", "Social User", "", "google-sub-123", "https://example.com/a.png", "google", now))
			},
			wantUser: &domain.User{
				ID:       2,
				Email:    "social@example.com",
				Name:     "Social User",
				SocialID: "google-sub-123",
				Image:    "https://example.com/a.png",
				Provider: domain.ProviderGoogle,
				CreatedAt: now,
			},
		},
		{
			name: "no row maps to not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("nobody@example.com").
					WillReturnRows(pgxmock.NewRows(userCols))
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "connection error maps to store unavailable",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("test@example.com").
					WillReturnError(assert.AnError)
			},
			wantErr: apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := pgsql.NewPgxUserRepository(mock)
			email := "test@example.com"
			if tt.wantUser != nil {
				email = tt.wantUser.Email
			} else if tt.wantErr == apperrors.ErrNotFound {
				email = "nobody@example.com"
			}
			got, err := repo.FindUserByEmail(context.Background(), email)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPgxUserRepository_CreateUser(t *testing.T) {
	now := time.Now()

	t.Run("inserts and returns stored record", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("new@example.com", "New User",
				sql.NullString{String: "$2a$10$hash", Valid: true},
				sql.NullString{},
				sql.NullString{},
				"credentials").
			WillReturnRows(userRow(7, "new@example.com", "New User", "$2a$10$hash", "", "", "credentials", now))

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.CreateUser(context.Background(), domain.NewUserData{
			Email:        "new@example.com",
			Name:         "New User",
			PasswordHash: "$2a$10$hash",
			Provider:     domain.ProviderCredentials,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, domain.ProviderCredentials, got.Provider)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("taken@example.com", "New User",
				sql.NullString{String: "$2a$10$hash", Valid: true},
				sql.NullString{},
				sql.NullString{},
				"credentials").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.CreateUser(context.Background(), domain.NewUserData{
			Email:        "taken@example.com",
			Name:         "New User",
			PasswordHash: "$2a$10$hash",
			Provider:     domain.ProviderCredentials,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxUserRepository_UpdateUser(t *testing.T) {
	now := time.Now()

	t.Run("patches only supplied fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		newName := "Renamed User"
		mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE email = \$2`).
			WithArgs(newName, "test@example.com").
			WillReturnRows(userRow(1, "test@example.com", newName, "$2a$10$hash", "", "", "credentials", now))

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.UpdateUser(context.Background(), "test@example.com", domain.UserPatch{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, newName, got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("link patch clears password in place", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		socialID := "google-sub-123"
		image := "https://example.com/a.png"
		provider := domain.ProviderGoogle
		mock.ExpectQuery(`UPDATE users SET password = NULL, social_id = \$1, image = \$2, provider = \$3 WHERE email = \$4`).
			WithArgs(socialID, image, "google", "test@example.com").
			WillReturnRows(userRow(1, "test@example.com", "Test User", "", socialID, image, "google", now))

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.UpdateUser(context.Background(), "test@example.com", domain.UserPatch{
			SocialID:      &socialID,
			Image:         &image,
			Provider:      &provider,
			ClearPassword: true,
		})

		require.NoError(t, err)
		assert.Empty(t, got.PasswordHash)
		assert.Equal(t, socialID, got.SocialID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch reads current record", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("test@example.com").
			WillReturnRows(userRow(1, "test@example.com", "Test User", "$2a$10$hash", "", "", "credentials", now))

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.UpdateUser(context.Background(), "test@example.com", domain.UserPatch{})

		require.NoError(t, err)
		assert.Equal(t, "Test User", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		newName := "Renamed User"
		mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE email = \$2`).
			WithArgs(newName, "nobody@example.com").
			WillReturnRows(pgxmock.NewRows(userCols))

		repo := pgsql.NewPgxUserRepository(mock)
		got, err := repo.UpdateUser(context.Background(), "nobody@example.com", domain.UserPatch{Name: &newName})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxUserRepository_DeleteUser(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users WHERE email = \$1`).
			WithArgs("gone@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := pgsql.NewPgxUserRepository(mock)
		err = repo.DeleteUser(context.Background(), "gone@example.com")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := pgsql.NewPgxUserRepository(mock)
		err = repo.DeleteUser(context.Background(), "nobody@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
