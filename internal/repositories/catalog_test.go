package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientCategoryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientCategoryRepository(db, GetTxFromContext)
	desc := "Milk products"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO category_ingredients")).
		WithArgs("Dairy", desc).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}).AddRow(1, "Dairy", desc))

	category, err := repo.Create(context.Background(), "Dairy", &desc)

	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ID)
	require.NotNil(t, category.Description)
	assert.Equal(t, desc, *category.Description)
}

func TestIngredientCategoryRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientCategoryRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("FROM category_ingredients")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}))

	category, err := repo.GetByID(context.Background(), 5)

	assert.Nil(t, category)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredientCategoryRepository_ExistsByTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientCategoryRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("id <> $2")).
		WithArgs("Dairy", 3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByTitle(context.Background(), "Dairy", 3)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIngredientCategoryRepository_Delete_InUse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientCategoryRepository(db, GetTxFromContext)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM category_ingredients")).
		WithArgs(1).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrForeignKeyViolation)
}

func TestIngredientRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ingredients")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id"}))

	ingredients, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, ingredients)
	assert.Empty(t, ingredients)
}

func TestIngredientRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ingredients")).
		WithArgs(2, "Cream", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id"}).AddRow(2, "Cream", 1))

	ingredient, err := repo.Update(context.Background(), 2, "Cream", 1)

	require.NoError(t, err)
	assert.Equal(t, "Cream", ingredient.Title)
}

func TestIngredientRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ingredients")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id"}))

	ingredient, err := repo.Update(context.Background(), 9, "Cream", 1)

	assert.Nil(t, ingredient)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredientRepository_Create_UnknownCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ingredients")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), "Milk", 42)

	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestRecipeCategoryRepository_CRUD(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeCategoryRepository(db, GetTxFromContext)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO category_recipes")).
		WithArgs("Soups").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Soups"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE category_recipes")).
		WithArgs(1, "Broths").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Broths"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM category_recipes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Broths"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM category_recipes")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM category_recipes")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Create(ctx, "Soups")
	require.NoError(t, err)
	assert.Equal(t, "Soups", created.Title)

	updated, err := repo.Update(ctx, 1, "Broths")
	require.NoError(t, err)
	assert.Equal(t, "Broths", updated.Title)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@b.c", "hash", false).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user, err := repo.Save(context.Background(), "a@b.c", "hash", false)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUniqueViolation)
}
