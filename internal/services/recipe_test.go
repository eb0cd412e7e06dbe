package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
)

var (
	testAdmin  = &models.User{ID: 1, Email: "admin@example.com", IsAdmin: true}
	testMember = &models.User{ID: 2, Email: "member@example.com"}
	testNow    = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

type recipeMocks struct {
	tx         *MockTransactor
	categories *MockRecipeCategoryRepository
	recipes    *MockRecipeRepository
	kafka      *MockKafkaWriter
}

// newRecipeService builds a service whose transactor runs the unit of work directly.
func newRecipeService(t *testing.T) (*RecipeService, recipeMocks) {
	ctrl := gomock.NewController(t)
	m := recipeMocks{
		tx:         NewMockTransactor(ctrl),
		categories: NewMockRecipeCategoryRepository(ctrl),
		recipes:    NewMockRecipeRepository(ctrl),
		kafka:      NewMockKafkaWriter(ctrl),
	}
	m.tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	svc := NewRecipeService(m.tx, m.categories, m.recipes, m.kafka)
	svc.now = func() time.Time { return testNow }
	return svc, m
}

func decodeEvent(t *testing.T, msg kafka.Message) models.RecipeEvent {
	t.Helper()
	var event models.RecipeEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	return event
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	ctx := context.Background()
	svc, m := newRecipeService(t)

	input := models.NewRecipe{
		Title:         "Cheese soup",
		CategoryID:    3,
		Description:   "Warm",
		Difficulty:    2,
		IngredientIDs: []int64{10, 11, 10},
	}

	m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Cheese soup").Return(false, nil)
	m.categories.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.RecipeCategory{ID: 3}, nil)
	m.recipes.EXPECT().
		Create(gomock.Any(), models.Recipe{Title: "Cheese soup", CategoryID: 3, Description: "Warm", Difficulty: 2, OwnerID: 1}).
		Return(&models.Recipe{ID: 7, Title: "Cheese soup", CategoryID: 3, OwnerID: 1}, nil)
	m.recipes.EXPECT().
		SaveIngredients(gomock.Any(), []models.RecipeIngredient{
			{RecipeID: 7, IngredientID: 10},
			{RecipeID: 7, IngredientID: 11},
		}).
		Return(nil)

	var published kafka.Message
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	recipe, err := svc.CreateRecipe(ctx, testAdmin, input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), recipe.ID)

	assert.Equal(t, "7", string(published.Key))
	event := decodeEvent(t, published)
	assert.Equal(t, models.RecipeCreated, event.Type)
	assert.Equal(t, int64(7), event.RecipeID)
	assert.Equal(t, int64(1), event.ActorID)
	assert.Equal(t, testNow.Unix(), event.Timestamp)
	assert.NotEmpty(t, event.EventID)
}

func TestRecipeService_CreateRecipe_Failures(t *testing.T) {
	ctx := context.Background()
	input := models.NewRecipe{Title: "Soup", CategoryID: 3, Difficulty: 1, IngredientIDs: []int64{99}}

	tests := []struct {
		name      string
		principal *models.User
		setup     func(m recipeMocks)
		wantErr   error
	}{
		{
			name:      "forbidden",
			principal: testMember,
			setup:     func(m recipeMocks) {},
			wantErr:   ErrForbidden,
		},
		{
			name:      "duplicate title",
			principal: testAdmin,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Soup").Return(true, nil)
			},
			wantErr: ErrRecipeExists,
		},
		{
			name:      "missing category",
			principal: testAdmin,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Soup").Return(false, nil)
				m.categories.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, repositories.ErrNotFound)
			},
			wantErr: ErrRecipeCategoryNotFound,
		},
		{
			name:      "missing ingredient",
			principal: testAdmin,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Soup").Return(false, nil)
				m.categories.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.RecipeCategory{ID: 3}, nil)
				m.recipes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Recipe{ID: 8}, nil)
				m.recipes.EXPECT().SaveIngredients(gomock.Any(), gomock.Any()).Return(repositories.ErrForeignKeyViolation)
			},
			wantErr: ErrIngredientNotFound,
		},
		{
			name:      "duplicate raced past pre-check",
			principal: testAdmin,
			setup: func(m recipeMocks) {
				m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Soup").Return(false, nil)
				m.categories.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.RecipeCategory{ID: 3}, nil)
				m.recipes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrUniqueViolation)
			},
			wantErr: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRecipeService(t)
			tt.setup(m)

			recipe, err := svc.CreateRecipe(ctx, tt.principal, input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, recipe)
		})
	}
}

func TestRecipeService_CreateRecipe_RollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := NewMockTransactor(ctrl)
	recipes := NewMockRecipeRepository(ctrl)
	categories := NewMockRecipeCategoryRepository(ctrl)

	svc := NewRecipeService(tx, categories, recipes, nil)

	// The transactor reports the unit of work's error, as a rolled back transaction does.
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			err := fn(ctx)
			assert.Error(t, err)
			return err
		})
	recipes.EXPECT().ExistsByTitle(gomock.Any(), "Soup").Return(false, nil)
	categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.RecipeCategory{ID: 1}, nil)
	recipes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Recipe{ID: 8}, nil)
	recipes.EXPECT().SaveIngredients(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.CreateRecipe(context.Background(), testAdmin, models.NewRecipe{Title: "Soup", CategoryID: 1, IngredientIDs: []int64{1}})
	assert.EqualError(t, err, "connection reset")
}

func TestRecipeService_CreateRecipe_NoIngredients(t *testing.T) {
	svc, m := newRecipeService(t)

	m.recipes.EXPECT().ExistsByTitle(gomock.Any(), "Water").Return(false, nil)
	m.categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.RecipeCategory{ID: 1}, nil)
	m.recipes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Recipe{ID: 9, Title: "Water"}, nil)
	m.recipes.EXPECT().SaveIngredients(gomock.Any(), gomock.Len(0)).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	recipe, err := svc.CreateRecipe(context.Background(), testAdmin, models.NewRecipe{Title: "Water", CategoryID: 1, Difficulty: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(9), recipe.ID)
}

func TestRecipeService_ReadRecipes(t *testing.T) {
	ctx := context.Background()
	svc, m := newRecipeService(t)
	ingredient := int64(10)

	rows := []models.RecipeRow{{Recipe: models.Recipe{ID: 7}, IngredientID: &ingredient}}
	m.recipes.EXPECT().List(gomock.Any()).Return(rows, nil)
	m.recipes.EXPECT().GetByID(gomock.Any(), int64(7)).Return(rows, nil)
	m.recipes.EXPECT().GetByID(gomock.Any(), int64(9999)).Return(nil, repositories.ErrNotFound)

	list, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, list)

	got, err := svc.GetRecipe(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = svc.GetRecipe(ctx, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.recipes.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				assert.Equal(t, models.RecipeDeleted, decodeEvent(t, msgs[0]).Type)
				return nil
			})

		assert.NoError(t, svc.DeleteRecipe(ctx, testAdmin, 7))
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.recipes.EXPECT().Delete(gomock.Any(), int64(9999)).Return(repositories.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteRecipe(ctx, testAdmin, 9999), ErrRecipeNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc, _ := newRecipeService(t)

		assert.ErrorIs(t, svc.DeleteRecipe(ctx, testMember, 7), ErrForbidden)
	})

	t.Run("publish failure does not fail delete", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.recipes.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error"))

		assert.NoError(t, svc.DeleteRecipe(ctx, testAdmin, 7))
	})
}

func TestRecipeService_RecipeCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().ExistsByTitle(gomock.Any(), "Soups", int64(0)).Return(false, nil)
		m.categories.EXPECT().Create(gomock.Any(), "Soups").Return(&models.RecipeCategory{ID: 1, Title: "Soups"}, nil)

		category, err := svc.CreateRecipeCategory(ctx, testAdmin, "Soups")
		require.NoError(t, err)
		assert.Equal(t, "Soups", category.Title)
	})

	t.Run("create duplicate", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().ExistsByTitle(gomock.Any(), "Soups", int64(0)).Return(true, nil)

		_, err := svc.CreateRecipeCategory(ctx, testAdmin, "Soups")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("update missing", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().GetByID(gomock.Any(), int64(9999)).Return(nil, repositories.ErrNotFound)

		_, err := svc.UpdateRecipeCategory(ctx, testAdmin, 9999, "Broths")
		assert.ErrorIs(t, err, ErrRecipeCategoryNotFound)
	})

	t.Run("update", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.RecipeCategory{ID: 1, Title: "Soups"}, nil)
		m.categories.EXPECT().ExistsByTitle(gomock.Any(), "Broths", int64(1)).Return(false, nil)
		m.categories.EXPECT().Update(gomock.Any(), int64(1), "Broths").Return(&models.RecipeCategory{ID: 1, Title: "Broths"}, nil)

		category, err := svc.UpdateRecipeCategory(ctx, testAdmin, 1, "Broths")
		require.NoError(t, err)
		assert.Equal(t, "Broths", category.Title)
	})

	t.Run("delete in use", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().Delete(gomock.Any(), int64(1)).Return(repositories.ErrForeignKeyViolation)

		assert.ErrorIs(t, svc.DeleteRecipeCategory(ctx, testAdmin, 1), ErrRecipeCategoryInUse)
	})

	t.Run("reads", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.categories.EXPECT().List(gomock.Any()).Return([]models.RecipeCategory{{ID: 1}}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, repositories.ErrNotFound)

		list, err := svc.ListRecipeCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = svc.GetRecipeCategory(ctx, 2)
		assert.ErrorIs(t, err, ErrRecipeCategoryNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc, _ := newRecipeService(t)

		_, err := svc.UpdateRecipeCategory(ctx, testMember, 1, "x")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.ErrorIs(t, svc.DeleteRecipeCategory(ctx, testMember, 1), ErrForbidden)
	})
}

func TestRecipeService_publishRecipeEvent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := &RecipeService{kafkaWriter: mockKafka, now: time.Now}

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil).Times(1)
	svc.publishRecipeEvent(ctx, models.RecipeCreated, 1, 1)

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)
	svc.publishRecipeEvent(ctx, models.RecipeCreated, 1, 1)

	// Nil writer must not panic
	svc = &RecipeService{now: time.Now}
	svc.publishRecipeEvent(ctx, models.RecipeDeleted, 1, 1)
}
