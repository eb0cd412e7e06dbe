package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

var recipeColumns = []string{"id", "title", "category_id", "description", "difficulty", "owner_id", "created_at", "ingredient_id"}

func TestRecipeRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes")).
		WithArgs("Soup", 2, "Hot", 3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id", "description", "difficulty", "owner_id", "created_at"}).
			AddRow(10, "Soup", 2, "Hot", 3, 1, createdAt))

	recipe, err := repo.Create(context.Background(), models.Recipe{
		Title: "Soup", CategoryID: 2, Description: "Hot", Difficulty: 3, OwnerID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), recipe.ID)
	assert.Equal(t, createdAt, recipe.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "recipes_title_key"})

	recipe, err := repo.Create(context.Background(), models.Recipe{Title: "Soup"})

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestRecipeRepository_SaveIngredients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	rows := models.NewRecipeIngredientBatch(7).Add(1).Add(2).Add(1).Rows()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipe_ingredients")).
		WithArgs(7, 1, 7, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SaveIngredients(context.Background(), rows)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_SaveIngredients_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	assert.NoError(t, repo.SaveIngredients(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_SaveIngredients_UnknownIngredient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipe_ingredients")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "recipe_ingredients_ingredient_id_fkey"})

	err := repo.SaveIngredients(context.Background(), []models.RecipeIngredient{{RecipeID: 7, IngredientID: 99}})

	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestRecipeRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN recipe_ingredients")).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(1, "Soup", 1, "", 2, 1, now, 4).
			AddRow(1, "Soup", 1, "", 2, 1, now, 5).
			AddRow(2, "Water", 1, "", 1, 1, now, nil))

	rows, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(4), *rows[0].IngredientID)
	assert.Equal(t, int64(5), *rows[1].IngredientID)
	assert.Equal(t, "Water", rows[2].Title)
	assert.Nil(t, rows[2].IngredientID)
}

func TestRecipeRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("FROM recipes r")).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	rows, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRecipeRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(1, "Soup", 1, "", 2, 1, now, 4))

	rows, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Soup", rows[0].Title)
}

func TestRecipeRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	rows, err := repo.GetByID(context.Background(), 42)

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipe_ingredients WHERE recipe_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipe_ingredients")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE id = $1")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrNotFound)
}

func TestRecipeRepository_Delete_AssociationError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipe_ingredients")).
		WillReturnError(sql.ErrConnDone)

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_UsesContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, GetTxFromContext)
	m := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM recipes WHERE title = $1)")).
		WithArgs("Soup").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	var exists bool
	err := m.WithTx(context.Background(), func(ctx context.Context) error {
		var err error
		exists, err = repo.ExistsByTitle(ctx, "Soup")
		return err
	})

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
