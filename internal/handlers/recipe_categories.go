package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// RecipeCategoryService defines the interface that the recipe service must implement for categories.
type RecipeCategoryService interface {
	CreateRecipeCategory(ctx context.Context, principal *models.User, title string) (*models.RecipeCategory, error)
	ListRecipeCategories(ctx context.Context) ([]models.RecipeCategory, error)
	GetRecipeCategory(ctx context.Context, id int64) (*models.RecipeCategory, error)
	UpdateRecipeCategory(ctx context.Context, principal *models.User, id int64, title string) (*models.RecipeCategory, error)
	DeleteRecipeCategory(ctx context.Context, principal *models.User, id int64) error
}

// RecipeCategoryRequest represents the JSON body for creating or renaming a recipe category
// swagger:model RecipeCategoryRequest
type RecipeCategoryRequest struct {
	// Title, unique
	// required: true
	// default: Soups
	Title string `json:"title" validate:"required,max=255"`
}

// NewCreateRecipeCategoryHandler returns an HTTP handler creating a recipe category.
// @Summary Create a recipe category
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.RecipeCategoryRequest true "Category"
// @Success 201 {object} models.RecipeCategory
// @Failure 302 {object} handlers.ErrorResponse "Category already exists"
// @Failure 403 {object} handlers.ErrorResponse
// @Router /recipes/category/create [post]
func NewCreateRecipeCategoryHandler(svc RecipeCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeCategoryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		category, err := svc.CreateRecipeCategory(r.Context(), principal, req.Title)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, category)
	}
}

// NewListRecipeCategoriesHandler returns an HTTP handler listing recipe categories.
// @Summary List recipe categories
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RecipeCategory
// @Router /recipes/category/list [get]
func NewListRecipeCategoriesHandler(svc RecipeCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListRecipeCategories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// NewGetRecipeCategoryHandler returns an HTTP handler fetching one recipe category.
// @Summary Get a recipe category
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} models.RecipeCategory
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/category/{id} [get]
func NewGetRecipeCategoryHandler(svc RecipeCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		category, err := svc.GetRecipeCategory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// NewUpdateRecipeCategoryHandler returns an HTTP handler renaming a recipe category.
// @Summary Update a recipe category
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param request body handlers.RecipeCategoryRequest true "Category"
// @Success 200 {object} models.RecipeCategory
// @Failure 302 {object} handlers.ErrorResponse "Title taken"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/category/update/{id} [put]
func NewUpdateRecipeCategoryHandler(svc RecipeCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req RecipeCategoryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		category, err := svc.UpdateRecipeCategory(r.Context(), principal, id, req.Title)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// NewDeleteRecipeCategoryHandler returns an HTTP handler deleting a recipe category.
// @Summary Delete a recipe category
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Category still has recipes"
// @Router /recipes/category/delete/{id} [delete]
func NewDeleteRecipeCategoryHandler(svc RecipeCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		if err := svc.DeleteRecipeCategory(r.Context(), principal, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
