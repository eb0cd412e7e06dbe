package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// IngredientCategoryRepository stores ingredient categories.
type IngredientCategoryRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIngredientCategoryRepository(db *sqlx.DB, txGetter TxGetter) *IngredientCategoryRepository {
	return &IngredientCategoryRepository{db: db, txGetter: txGetter}
}

func (r *IngredientCategoryRepository) Create(ctx context.Context, title string, description *string) (*models.IngredientCategory, error) {
	const query = `
		INSERT INTO category_ingredients (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description
	`

	var category models.IngredientCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, title, description)
	logQuery(query, []any{title, description}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

func (r *IngredientCategoryRepository) List(ctx context.Context) ([]models.IngredientCategory, error) {
	const query = `
		SELECT id, title, description
		FROM category_ingredients
		ORDER BY id
	`

	categories := []models.IngredientCategory{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query)
	logQuery(query, nil, len(categories), err)

	if err != nil {
		return nil, mapError(err)
	}
	return categories, nil
}

func (r *IngredientCategoryRepository) GetByID(ctx context.Context, id int64) (*models.IngredientCategory, error) {
	const query = `
		SELECT id, title, description
		FROM category_ingredients
		WHERE id = $1
	`

	var category models.IngredientCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, id)
	logQuery(query, []any{id}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// ExistsByTitle reports whether another category (id != excludeID) already uses title.
func (r *IngredientCategoryRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM category_ingredients WHERE title = $1 AND id <> $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, title, excludeID)
	logQuery(query, []any{title, excludeID}, exists, err)

	return exists, mapError(err)
}

func (r *IngredientCategoryRepository) Update(ctx context.Context, id int64, title string, description *string) (*models.IngredientCategory, error) {
	const query = `
		UPDATE category_ingredients
		SET title = $2, description = $3
		WHERE id = $1
		RETURNING id, title, description
	`

	var category models.IngredientCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, id, title, description)
	logQuery(query, []any{id, title, description}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// Delete removes a category. Categories still referenced by ingredients yield ErrForeignKeyViolation.
func (r *IngredientCategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM category_ingredients WHERE id = $1`
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
