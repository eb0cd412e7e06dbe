package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// UserRepository stores registered users.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, email, password_hash, is_admin
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Save inserts a new user. A duplicate email yields ErrUniqueViolation.
func (r *UserRepository) Save(ctx context.Context, email, passwordHash string, isAdmin bool) (*models.User, error) {
	const query = `
		INSERT INTO users (email, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, is_admin
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, passwordHash, isAdmin)
	logQuery(query, []any{email, "<redacted>", isAdmin}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
