package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// IngredientRepository stores ingredients.
type IngredientRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIngredientRepository(db *sqlx.DB, txGetter TxGetter) *IngredientRepository {
	return &IngredientRepository{db: db, txGetter: txGetter}
}

// Create inserts an ingredient. An unknown category yields ErrForeignKeyViolation.
func (r *IngredientRepository) Create(ctx context.Context, title string, categoryID int64) (*models.Ingredient, error) {
	const query = `
		INSERT INTO ingredients (title, category_id)
		VALUES ($1, $2)
		RETURNING id, title, category_id
	`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ingredient, query, title, categoryID)
	logQuery(query, []any{title, categoryID}, ingredient.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &ingredient, nil
}

func (r *IngredientRepository) List(ctx context.Context) ([]models.Ingredient, error) {
	const query = `
		SELECT id, title, category_id
		FROM ingredients
		ORDER BY id
	`

	ingredients := []models.Ingredient{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ingredients, query)
	logQuery(query, nil, len(ingredients), err)

	if err != nil {
		return nil, mapError(err)
	}
	return ingredients, nil
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	const query = `
		SELECT id, title, category_id
		FROM ingredients
		WHERE id = $1
	`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ingredient, query, id)
	logQuery(query, []any{id}, ingredient.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &ingredient, nil
}

// ExistsByTitle reports whether another ingredient (id != excludeID) already uses title.
func (r *IngredientRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM ingredients WHERE title = $1 AND id <> $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, title, excludeID)
	logQuery(query, []any{title, excludeID}, exists, err)

	return exists, mapError(err)
}

func (r *IngredientRepository) Update(ctx context.Context, id int64, title string, categoryID int64) (*models.Ingredient, error) {
	const query = `
		UPDATE ingredients
		SET title = $2, category_id = $3
		WHERE id = $1
		RETURNING id, title, category_id
	`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ingredient, query, id, title, categoryID)
	logQuery(query, []any{id, title, categoryID}, ingredient.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &ingredient, nil
}

// Delete removes an ingredient. Ingredients still used by recipes yield ErrForeignKeyViolation.
func (r *IngredientRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM ingredients WHERE id = $1`
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
