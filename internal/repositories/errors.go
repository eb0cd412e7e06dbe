package repositories

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Postgres SQLSTATE codes mapped to storage errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Storage errors returned by repositories. Callers match them with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// mapError converts driver errors into storage errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errors.WithStack(ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Wrap(ErrUniqueViolation, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return errors.Wrap(ErrForeignKeyViolation, pgErr.ConstraintName)
		}
	}

	return errors.WithStack(err)
}
