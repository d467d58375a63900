package repository

import (
	"errors"

	"greenvault/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Pending PendingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Pending: NewPendingRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a unique-index violation. The
// unique index on username is the sole concurrency guard for registration.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
