package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// RecipeService defines the interface that the recipe service must implement for recipes.
type RecipeService interface {
	CreateRecipe(ctx context.Context, principal *models.User, input models.NewRecipe) (*models.Recipe, error)
	ListRecipes(ctx context.Context) ([]models.RecipeRow, error)
	GetRecipe(ctx context.Context, id int64) ([]models.RecipeRow, error)
	DeleteRecipe(ctx context.Context, principal *models.User, id int64) error
}

// RecipeIngredientRequest references one existing ingredient
// swagger:model RecipeIngredientRequest
type RecipeIngredientRequest struct {
	// required: true
	// default: 1
	IngredientID int64 `json:"ingredient_id" validate:"required,gt=0"`
}

// RecipeRequest represents the JSON body for creating a recipe
// swagger:model RecipeRequest
type RecipeRequest struct {
	// Title, unique
	// required: true
	// default: Cheese soup
	Title string `json:"title" validate:"required,max=255"`

	// Existing recipe category
	// required: true
	// default: 1
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`

	// Free text
	Description string `json:"description"`

	// Difficulty level
	// default: 1
	Difficulty int `json:"difficulty" validate:"gte=0"`

	// Ingredients; duplicates are stored once
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
}

func (req RecipeRequest) toNewRecipe() models.NewRecipe {
	ids := make([]int64, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ids = append(ids, ing.IngredientID)
	}
	return models.NewRecipe{
		Title:         req.Title,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Difficulty:    req.Difficulty,
		IngredientIDs: ids,
	}
}

// NewCreateRecipeHandler returns an HTTP handler creating a recipe with its ingredients.
// @Summary Create a recipe
// @Description Stores the recipe owned by the caller and its ingredient set in one transaction
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} models.Recipe
// @Failure 302 {object} handlers.ErrorResponse "Recipe already exists"
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Category or ingredient not found"
// @Failure 422 {object} handlers.ErrorResponse
// @Router /recipes/create [post]
func NewCreateRecipeHandler(svc RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		recipe, err := svc.CreateRecipe(r.Context(), principal, req.toNewRecipe())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewListRecipesHandler returns an HTTP handler listing recipes.
// @Summary List recipes
// @Description One entry per recipe and ingredient pairing; recipes without ingredients carry a null ingredient_id
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RecipeRow
// @Router /recipes/list [get]
func NewListRecipesHandler(svc RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListRecipes(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// NewGetRecipeHandler returns an HTTP handler fetching one recipe.
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe id"
// @Success 200 {array} models.RecipeRow
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/{id} [get]
func NewGetRecipeHandler(svc RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rows, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// NewDeleteRecipeHandler returns an HTTP handler deleting a recipe.
// @Summary Delete a recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe id"
// @Success 204
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/delete/{id} [delete]
func NewDeleteRecipeHandler(svc RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		principal := middlewares.GetPrincipalFromContext(r.Context())
		if err := svc.DeleteRecipe(r.Context(), principal, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
