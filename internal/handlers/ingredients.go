package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// IngredientService defines the interface that the catalog service must implement for ingredients.
type IngredientService interface {
	CreateIngredient(ctx context.Context, principal *models.User, title string, categoryID int64) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, principal *models.User, id int64, title string, categoryID int64) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, principal *models.User, id int64) error
}

// IngredientRequest represents the JSON body for creating or updating an ingredient
// swagger:model IngredientRequest
type IngredientRequest struct {
	// Title, unique
	// required: true
	// default: Milk
	Title string `json:"title" validate:"required,max=255"`

	// Existing ingredient category
	// required: true
	// default: 1
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
}

// NewCreateIngredientHandler returns an HTTP handler creating an ingredient.
// @Summary Create an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.IngredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 302 {object} handlers.ErrorResponse "Ingredient already exists"
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Failure 422 {object} handlers.ErrorResponse
// @Router /ingredients/create [post]
func NewCreateIngredientHandler(svc IngredientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IngredientRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		ingredient, err := svc.CreateIngredient(r.Context(), principal, req.Title, req.CategoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ingredient)
	}
}

// NewListIngredientsHandler returns an HTTP handler listing ingredients.
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Ingredient
// @Router /ingredients/list [get]
func NewListIngredientsHandler(svc IngredientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.ListIngredients(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewGetIngredientHandler returns an HTTP handler fetching one ingredient.
// @Summary Get an ingredient
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ingredient id"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ingredients/{id} [get]
func NewGetIngredientHandler(svc IngredientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		ingredient, err := svc.GetIngredient(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredient)
	}
}

// NewUpdateIngredientHandler returns an HTTP handler replacing an ingredient.
// @Summary Update an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ingredient id"
// @Param request body handlers.IngredientRequest true "Ingredient"
// @Success 200 {object} models.Ingredient
// @Failure 302 {object} handlers.ErrorResponse "Title taken"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ingredients/update/{id} [put]
func NewUpdateIngredientHandler(svc IngredientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req IngredientRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		ingredient, err := svc.UpdateIngredient(r.Context(), principal, id, req.Title, req.CategoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredient)
	}
}

// NewDeleteIngredientHandler returns an HTTP handler deleting an ingredient.
// @Summary Delete an ingredient
// @Tags ingredients
// @Security BearerAuth
// @Param id path int true "Ingredient id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Ingredient used by a recipe"
// @Router /ingredients/delete/{id} [delete]
func NewDeleteIngredientHandler(svc IngredientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		if err := svc.DeleteIngredient(r.Context(), principal, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
