package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// RecipeRepository stores recipes and their ingredient associations.
type RecipeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeRepository(db *sqlx.DB, txGetter TxGetter) *RecipeRepository {
	return &RecipeRepository{db: db, txGetter: txGetter}
}

// ExistsByTitle reports whether a recipe with title exists.
func (r *RecipeRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM recipes WHERE title = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, title)
	logQuery(query, []any{title}, exists, err)

	return exists, mapError(err)
}

// Create inserts the recipe row and returns it with its generated id and timestamp.
func (r *RecipeRepository) Create(ctx context.Context, recipe models.Recipe) (*models.Recipe, error) {
	const query = `
		INSERT INTO recipes (title, category_id, description, difficulty, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, category_id, description, difficulty, owner_id, created_at
	`
	args := []any{recipe.Title, recipe.CategoryID, recipe.Description, recipe.Difficulty, recipe.OwnerID}

	var created models.Recipe
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// SaveIngredients writes all association rows in a single statement.
func (r *RecipeRepository) SaveIngredients(ctx context.Context, rows []models.RecipeIngredient) error {
	if len(rows) == 0 {
		return nil
	}

	const query = `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
		VALUES (:recipe_id, :ingredient_id)
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, rows)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{rows}, rowsAffected, err)

	return mapError(err)
}

// List returns one row per recipe/ingredient pairing. Recipes without
// ingredients appear once with a nil ingredient id.
func (r *RecipeRepository) List(ctx context.Context) ([]models.RecipeRow, error) {
	const query = `
		SELECT r.id, r.title, r.category_id, r.description, r.difficulty, r.owner_id, r.created_at,
		       ri.ingredient_id
		FROM recipes r
		LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.id
		ORDER BY r.id, ri.id
	`

	rows := []models.RecipeRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query)
	logQuery(query, nil, len(rows), err)

	if err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}

// GetByID returns the pairings of one recipe, or ErrNotFound when the recipe does not exist.
func (r *RecipeRepository) GetByID(ctx context.Context, id int64) ([]models.RecipeRow, error) {
	const query = `
		SELECT r.id, r.title, r.category_id, r.description, r.difficulty, r.owner_id, r.created_at,
		       ri.ingredient_id
		FROM recipes r
		LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.id
		WHERE r.id = $1
		ORDER BY ri.id
	`

	rows := []models.RecipeRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, id)
	logQuery(query, []any{id}, len(rows), err)

	if err != nil {
		return nil, mapError(err)
	}
	if len(rows) == 0 {
		return nil, mapError(ErrNotFound)
	}
	return rows, nil
}

// Delete removes the association rows and then the recipe. It must run inside
// a transaction so a missing recipe leaves nothing deleted.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM recipe_ingredients WHERE recipe_id = $1`

	exec := executor(ctx, r.db, r.txGetter)

	res, err := exec.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	return deleteByID(ctx, exec, `DELETE FROM recipes WHERE id = $1`, id)
}
