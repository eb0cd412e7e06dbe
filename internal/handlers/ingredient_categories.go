package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// IngredientCategoryService defines the interface that the catalog service must implement for categories.
type IngredientCategoryService interface {
	CreateIngredientCategory(ctx context.Context, principal *models.User, title string, description *string) (*models.IngredientCategory, error)
	ListIngredientCategories(ctx context.Context) ([]models.IngredientCategory, error)
	GetIngredientCategory(ctx context.Context, id int64) (*models.IngredientCategory, error)
	UpdateIngredientCategory(ctx context.Context, principal *models.User, id int64, title string, description *string) (*models.IngredientCategory, error)
	DeleteIngredientCategory(ctx context.Context, principal *models.User, id int64) error
}

// IngredientCategoryRequest represents the JSON body for creating or updating an ingredient category
// swagger:model IngredientCategoryRequest
type IngredientCategoryRequest struct {
	// Title, unique
	// required: true
	// default: Dairy
	Title string `json:"title" validate:"required,max=255"`

	// Optional description
	// default: Milk products
	Description *string `json:"description"`
}

// NewCreateIngredientCategoryHandler returns an HTTP handler creating an ingredient category.
// @Summary Create an ingredient category
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.IngredientCategoryRequest true "Category"
// @Success 201 {object} models.IngredientCategory
// @Failure 302 {object} handlers.ErrorResponse "Category already exists"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse
// @Router /ingredients/category/create [post]
func NewCreateIngredientCategoryHandler(svc IngredientCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IngredientCategoryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		category, err := svc.CreateIngredientCategory(r.Context(), principal, req.Title, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

// NewListIngredientCategoriesHandler returns an HTTP handler listing ingredient categories.
// @Summary List ingredient categories
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.IngredientCategory
// @Failure 401 {object} handlers.ErrorResponse
// @Router /ingredients/category/list [get]
func NewListIngredientCategoriesHandler(svc IngredientCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListIngredientCategories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// NewGetIngredientCategoryHandler returns an HTTP handler fetching one ingredient category.
// @Summary Get an ingredient category
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} models.IngredientCategory
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ingredients/category/{id} [get]
func NewGetIngredientCategoryHandler(svc IngredientCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		category, err := svc.GetIngredientCategory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// NewUpdateIngredientCategoryHandler returns an HTTP handler replacing an ingredient category.
// @Summary Update an ingredient category
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param request body handlers.IngredientCategoryRequest true "Category"
// @Success 200 {object} models.IngredientCategory
// @Failure 302 {object} handlers.ErrorResponse "Title taken"
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ingredients/category/update/{id} [put]
func NewUpdateIngredientCategoryHandler(svc IngredientCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req IngredientCategoryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		category, err := svc.UpdateIngredientCategory(r.Context(), principal, id, req.Title, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// NewDeleteIngredientCategoryHandler returns an HTTP handler deleting an ingredient category.
// @Summary Delete an ingredient category
// @Tags ingredients
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 204
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Category still has ingredients"
// @Router /ingredients/category/delete/{id} [delete]
func NewDeleteIngredientCategoryHandler(svc IngredientCategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		if err := svc.DeleteIngredientCategory(r.Context(), principal, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
