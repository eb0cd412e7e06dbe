package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
)

// IngredientCategoryRepository defines storage operations for ingredient categories.
type IngredientCategoryRepository interface {
	Create(ctx context.Context, title string, description *string) (*models.IngredientCategory, error)
	List(ctx context.Context) ([]models.IngredientCategory, error)
	GetByID(ctx context.Context, id int64) (*models.IngredientCategory, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, title string, description *string) (*models.IngredientCategory, error)
	Delete(ctx context.Context, id int64) error
}

// IngredientRepository defines storage operations for ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, title string, categoryID int64) (*models.Ingredient, error)
	List(ctx context.Context) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, title string, categoryID int64) (*models.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogService manages ingredient categories and ingredients.
// Mutations are restricted to administrators.
type CatalogService struct {
	tx          Transactor
	categories  IngredientCategoryRepository
	ingredients IngredientRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	tx Transactor,
	categories IngredientCategoryRepository,
	ingredients IngredientRepository,
) *CatalogService {
	return &CatalogService{
		tx:          tx,
		categories:  categories,
		ingredients: ingredients,
	}
}

// CreateIngredientCategory adds a category with a unique title.
func (s *CatalogService) CreateIngredientCategory(ctx context.Context, principal *models.User, title string, description *string) (*models.IngredientCategory, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var category *models.IngredientCategory
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.categories.ExistsByTitle(ctx, title, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrIngredientCategoryExists
		}

		category, err = s.categories.Create(ctx, title, description)
		return err
	})
	if err != nil {
		err = mapIngredientCategoryError(err)
		logger.Log.Errorw("failed to create ingredient category", "title", title, "error", err)
		return nil, err
	}

	return category, nil
}

// ListIngredientCategories returns all categories ordered by id.
func (s *CatalogService) ListIngredientCategories(ctx context.Context) ([]models.IngredientCategory, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list ingredient categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// GetIngredientCategory returns one category.
func (s *CatalogService) GetIngredientCategory(ctx context.Context, id int64) (*models.IngredientCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		err = mapIngredientCategoryError(err)
		logger.Log.Errorw("failed to get ingredient category", "id", id, "error", err)
		return nil, err
	}
	return category, nil
}

// UpdateIngredientCategory replaces the title and description of a category.
func (s *CatalogService) UpdateIngredientCategory(ctx context.Context, principal *models.User, id int64, title string, description *string) (*models.IngredientCategory, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var category *models.IngredientCategory
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.categories.GetByID(ctx, id); err != nil {
			return err
		}

		exists, err := s.categories.ExistsByTitle(ctx, title, id)
		if err != nil {
			return err
		}
		if exists {
			return ErrIngredientCategoryExists
		}

		category, err = s.categories.Update(ctx, id, title, description)
		return err
	})
	if err != nil {
		err = mapIngredientCategoryError(err)
		logger.Log.Errorw("failed to update ingredient category", "id", id, "error", err)
		return nil, err
	}

	return category, nil
}

// DeleteIngredientCategory removes a category that no ingredient refers to.
func (s *CatalogService) DeleteIngredientCategory(ctx context.Context, principal *models.User, id int64) error {
	if err := RequireAdmin(principal); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		err = mapIngredientCategoryError(err)
		logger.Log.Errorw("failed to delete ingredient category", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("ingredient category deleted", "id", id, "by", principal.ID)
	return nil
}

// CreateIngredient adds an ingredient to an existing category.
func (s *CatalogService) CreateIngredient(ctx context.Context, principal *models.User, title string, categoryID int64) (*models.Ingredient, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var ingredient *models.Ingredient
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkIngredientCategory(ctx, categoryID); err != nil {
			return err
		}

		exists, err := s.ingredients.ExistsByTitle(ctx, title, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrIngredientExists
		}

		ingredient, err = s.ingredients.Create(ctx, title, categoryID)
		return categoryGone(err)
	})
	if err != nil {
		err = mapIngredientError(err)
		logger.Log.Errorw("failed to create ingredient", "title", title, "category_id", categoryID, "error", err)
		return nil, err
	}

	return ingredient, nil
}

// ListIngredients returns all ingredients ordered by id.
func (s *CatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "error", err)
		return nil, err
	}
	return ingredients, nil
}

// GetIngredient returns one ingredient.
func (s *CatalogService) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		err = mapIngredientError(err)
		logger.Log.Errorw("failed to get ingredient", "id", id, "error", err)
		return nil, err
	}
	return ingredient, nil
}

// UpdateIngredient replaces the title and category of an ingredient.
func (s *CatalogService) UpdateIngredient(ctx context.Context, principal *models.User, id int64, title string, categoryID int64) (*models.Ingredient, error) {
	if err := RequireAdmin(principal); err != nil {
		return nil, err
	}

	var ingredient *models.Ingredient
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.ingredients.GetByID(ctx, id); err != nil {
			return err
		}

		if err := s.checkIngredientCategory(ctx, categoryID); err != nil {
			return err
		}

		exists, err := s.ingredients.ExistsByTitle(ctx, title, id)
		if err != nil {
			return err
		}
		if exists {
			return ErrIngredientExists
		}

		ingredient, err = s.ingredients.Update(ctx, id, title, categoryID)
		return categoryGone(err)
	})
	if err != nil {
		err = mapIngredientError(err)
		logger.Log.Errorw("failed to update ingredient", "id", id, "error", err)
		return nil, err
	}

	return ingredient, nil
}

// DeleteIngredient removes an ingredient that no recipe uses.
func (s *CatalogService) DeleteIngredient(ctx context.Context, principal *models.User, id int64) error {
	if err := RequireAdmin(principal); err != nil {
		return err
	}

	if err := s.ingredients.Delete(ctx, id); err != nil {
		err = mapIngredientError(err)
		logger.Log.Errorw("failed to delete ingredient", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("ingredient deleted", "id", id, "by", principal.ID)
	return nil
}

func (s *CatalogService) checkIngredientCategory(ctx context.Context, categoryID int64) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrIngredientCategoryNotFound
		}
		return err
	}
	return nil
}

func mapIngredientCategoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrIngredientCategoryNotFound
	case errors.Is(err, repositories.ErrUniqueViolation):
		return ErrIngredientCategoryExists
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return ErrIngredientCategoryInUse
	}
	return err
}

// categoryGone reports a category removed between the existence check and the write.
func categoryGone(err error) error {
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		return ErrIngredientCategoryNotFound
	}
	return err
}

func mapIngredientError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrIngredientNotFound
	case errors.Is(err, repositories.ErrUniqueViolation):
		return ErrIngredientExists
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return ErrIngredientInUse
	}
	return err
}
