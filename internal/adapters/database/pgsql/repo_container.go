package pgsql

import (
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		ResetTokenRepo: newPgxResetTokenRepository(dbPool),
	}
}
