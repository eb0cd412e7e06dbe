package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
)

// RecipeCategoryRepository defines storage operations for recipe categories.
type RecipeCategoryRepository interface {
	Create(ctx context.Context, title string) (*models.RecipeCategory, error)
	List(ctx context.Context) ([]models.RecipeCategory, error)
	GetByID(ctx context.Context, id int64) (*models.RecipeCategory, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, title string) (*models.RecipeCategory, error)
	Delete(ctx context.Context, id int64) error
}

// RecipeRepository defines storage operations for recipes and their ingredients.
type RecipeRepository interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, recipe models.Recipe) (*models.Recipe, error)
	SaveIngredients(ctx context.Context, rows []models.RecipeIngredient) error // Writes all rows in one statement
	List(ctx context.Context) ([]models.RecipeRow, error)
	GetByID(ctx context.Context, id int64) ([]models.RecipeRow, error)
	Delete(ctx context.Context, id int64) error // Removes association rows and the recipe
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RecipeService manages recipe categories and recipes and publishes recipe events.
type RecipeService struct {
	tx          Transactor
	categories  RecipeCategoryRepository
	recipes     RecipeRepository
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewRecipeService creates a new RecipeService. kafkaWriter may be nil, in
// which case no events are published.
func NewRecipeService(
	tx Transactor,
	categories RecipeCategoryRepository,
	recipes RecipeRepository,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		tx:          tx,
		categories:  categories,
		recipes:     recipes,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// CreateRecipeCategory adds a category with a unique title.
func (s *RecipeService) CreateRecipeCategory(ctx context.Context, principal *models.User, title string) (*models.RecipeCategory, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var category *models.RecipeCategory
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.categories.ExistsByTitle(ctx, title, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrRecipeCategoryExists
		}

		category, err = s.categories.Create(ctx, title)
		return err
	})
	if err != nil {
		err = mapRecipeCategoryError(err)
		logger.Log.Errorw("failed to create recipe category", "title", title, "error", err)
		return nil, err
	}

	return category, nil
}

// ListRecipeCategories returns all categories ordered by id.
func (s *RecipeService) ListRecipeCategories(ctx context.Context) ([]models.RecipeCategory, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recipe categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// GetRecipeCategory returns one category.
func (s *RecipeService) GetRecipeCategory(ctx context.Context, id int64) (*models.RecipeCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		err = mapRecipeCategoryError(err)
		logger.Log.Errorw("failed to get recipe category", "id", id, "error", err)
		return nil, err
	}
	return category, nil
}

// UpdateRecipeCategory renames a category.
func (s *RecipeService) UpdateRecipeCategory(ctx context.Context, principal *models.User, id int64, title string) (*models.RecipeCategory, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var category *models.RecipeCategory
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.categories.GetByID(ctx, id); err != nil {
			return err
		}

		exists, err := s.categories.ExistsByTitle(ctx, title, id)
		if err != nil {
			return err
		}
		if exists {
			return ErrRecipeCategoryExists
		}

		category, err = s.categories.Update(ctx, id, title)
		return err
	})
	if err != nil {
		err = mapRecipeCategoryError(err)
		logger.Log.Errorw("failed to update recipe category", "id", id, "error", err)
		return nil, err
	}

	return category, nil
}

// DeleteRecipeCategory removes a category that no recipe refers to.
func (s *RecipeService) DeleteRecipeCategory(ctx context.Context, principal *models.User, id int64) error {
	if err := RequireAdmin(principal); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		err = mapRecipeCategoryError(err)
		logger.Log.Errorw("failed to delete recipe category", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("recipe category deleted", "id", id, "by", principal.ID)
	return nil
}

// CreateRecipe stores a recipe owned by principal together with its
// ingredient set. Either everything is written or nothing is.
func (s *RecipeService) CreateRecipe(ctx context.Context, principal *models.User, input models.NewRecipe) (*models.Recipe, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var recipe *models.Recipe
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.recipes.ExistsByTitle(ctx, input.Title)
		if err != nil {
			return err
		}
		if exists {
			return ErrRecipeExists
		}

		if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRecipeCategoryNotFound
			}
			return err
		}

		recipe, err = s.recipes.Create(ctx, models.Recipe{
			Title:       input.Title,
			CategoryID:  input.CategoryID,
			Description: input.Description,
			Difficulty:  input.Difficulty,
			OwnerID:     principal.ID,
		})
		if err != nil {
			if errors.Is(err, repositories.ErrForeignKeyViolation) {
				return ErrRecipeCategoryNotFound
			}
			return err
		}

		batch := models.NewRecipeIngredientBatch(recipe.ID)
		for _, id := range input.IngredientIDs {
			batch.Add(id)
		}

		logger.Log.Debugw("saving recipe ingredients", "recipe_id", recipe.ID, "count", batch.Len(), "ingredient_ids", batch.IngredientIDs())
		if err := s.recipes.SaveIngredients(ctx, batch.Rows()); err != nil {
			if errors.Is(err, repositories.ErrForeignKeyViolation) {
				return ErrIngredientNotFound
			}
			return err
		}

		return nil
	})
	if err != nil {
		err = mapRecipeError(err)
		logger.Log.Errorw("failed to create recipe", "title", input.Title, "error", err)
		return nil, err
	}

	logger.Log.Infow("recipe created", "id", recipe.ID, "by", principal.ID)
	s.publishRecipeEvent(ctx, models.RecipeCreated, recipe.ID, principal.ID)

	return recipe, nil
}

// ListRecipes returns one row per recipe and ingredient pairing.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.RecipeRow, error) {
	rows, err := s.recipes.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "error", err)
		return nil, err
	}
	return rows, nil
}

// GetRecipe returns the pairings of one recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) ([]models.RecipeRow, error) {
	rows, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		err = mapRecipeError(err)
		logger.Log.Errorw("failed to get recipe", "id", id, "error", err)
		return nil, err
	}
	return rows, nil
}

// DeleteRecipe removes a recipe and its ingredient associations.
func (s *RecipeService) DeleteRecipe(ctx context.Context, principal *models.User, id int64) error {
	if err := RequireAdmin(principal); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.recipes.Delete(ctx, id)
	})
	if err != nil {
		err = mapRecipeError(err)
		logger.Log.Errorw("failed to delete recipe", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("recipe deleted", "id", id, "by", principal.ID)
	s.publishRecipeEvent(ctx, models.RecipeDeleted, id, principal.ID)

	return nil
}

// publishRecipeEvent publishes a committed recipe change to Kafka.
// Failures are logged only.
func (s *RecipeService) publishRecipeEvent(ctx context.Context, eventType string, recipeID, actorID int64) {
	event := models.RecipeEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		RecipeID:  recipeID,
		ActorID:   actorID,
		Timestamp: s.now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal recipe event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(recipeID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish recipe event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Recipe event published", "event_id", event.EventID, "type", eventType, "recipe_id", recipeID)
	}
}

func mapRecipeCategoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrRecipeCategoryNotFound
	case errors.Is(err, repositories.ErrUniqueViolation):
		return ErrRecipeCategoryExists
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return ErrRecipeCategoryInUse
	}
	return err
}

func mapRecipeError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrRecipeNotFound
	case errors.Is(err, repositories.ErrUniqueViolation):
		return ErrRecipeExists
	}
	return err
}
