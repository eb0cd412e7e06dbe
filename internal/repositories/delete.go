package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// deleteByID executes a single-row delete and reports ErrNotFound when nothing was removed.
func deleteByID(ctx context.Context, exec sqlx.ExtContext, query string, id int64) error {
	res, err := exec.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return mapError(err)
	}
	if rowsAffected == 0 {
		return mapError(ErrNotFound)
	}
	return nil
}
