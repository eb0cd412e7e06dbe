package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"NoRows", sql.ErrNoRows, ErrNotFound},
		{"Unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ErrUniqueViolation},
		{"ForeignKey", &pgconn.PgError{Code: "23503", ConstraintName: "recipes_category_id_fkey"}, ErrForeignKeyViolation},
		{"OtherPgError", &pgconn.PgError{Code: "42P01"}, nil},
		{"Other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.Error(t, got)
			if tt.target != nil {
				assert.ErrorIs(t, got, tt.target)
			}
			if tt.target != ErrNotFound {
				assert.NotErrorIs(t, got, ErrNotFound)
			}
		})
	}
}
