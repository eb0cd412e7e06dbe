package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// RecipeCategoryRepository stores recipe categories.
type RecipeCategoryRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeCategoryRepository(db *sqlx.DB, txGetter TxGetter) *RecipeCategoryRepository {
	return &RecipeCategoryRepository{db: db, txGetter: txGetter}
}

func (r *RecipeCategoryRepository) Create(ctx context.Context, title string) (*models.RecipeCategory, error) {
	const query = `
		INSERT INTO category_recipes (title)
		VALUES ($1)
		RETURNING id, title
	`

	var category models.RecipeCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, title)
	logQuery(query, []any{title}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

func (r *RecipeCategoryRepository) List(ctx context.Context) ([]models.RecipeCategory, error) {
	const query = `
		SELECT id, title
		FROM category_recipes
		ORDER BY id
	`

	categories := []models.RecipeCategory{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query)
	logQuery(query, nil, len(categories), err)

	if err != nil {
		return nil, mapError(err)
	}
	return categories, nil
}

func (r *RecipeCategoryRepository) GetByID(ctx context.Context, id int64) (*models.RecipeCategory, error) {
	const query = `
		SELECT id, title
		FROM category_recipes
		WHERE id = $1
	`

	var category models.RecipeCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, id)
	logQuery(query, []any{id}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// ExistsByTitle reports whether another category (id != excludeID) already uses title.
func (r *RecipeCategoryRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM category_recipes WHERE title = $1 AND id <> $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, title, excludeID)
	logQuery(query, []any{title, excludeID}, exists, err)

	return exists, mapError(err)
}

func (r *RecipeCategoryRepository) Update(ctx context.Context, id int64, title string) (*models.RecipeCategory, error) {
	const query = `
		UPDATE category_recipes
		SET title = $2
		WHERE id = $1
		RETURNING id, title
	`

	var category models.RecipeCategory
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, id, title)
	logQuery(query, []any{id, title}, category.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// Delete removes a category. Categories still used by recipes yield ErrForeignKeyViolation.
func (r *RecipeCategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM category_recipes WHERE id = $1`
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
