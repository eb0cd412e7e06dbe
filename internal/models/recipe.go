package models

import "time"

// RecipeCategory groups recipes, e.g. "Soups".
type RecipeCategory struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// Recipe represents a recipe row in the database
type Recipe struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	Description string    `json:"description" db:"description"`
	Difficulty  int       `json:"difficulty" db:"difficulty"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RecipeIngredient links one recipe to one ingredient.
type RecipeIngredient struct {
	ID           int64 `json:"id" db:"id"`
	RecipeID     int64 `json:"recipe_id" db:"recipe_id"`
	IngredientID int64 `json:"ingredient_id" db:"ingredient_id"`
}

// RecipeRow is one (recipe, ingredient) pairing as returned by recipe reads.
// IngredientID is nil for a recipe that has no ingredients.
type RecipeRow struct {
	Recipe       `json:"recipe"`
	IngredientID *int64 `json:"ingredient_id" db:"ingredient_id"`
}

// NewRecipe holds the fields supplied when creating a recipe.
type NewRecipe struct {
	Title         string
	CategoryID    int64
	Description   string
	Difficulty    int
	IngredientIDs []int64
}

// RecipeIngredientBatch accumulates the association rows of a single recipe
// so they can be written in one statement. Duplicate ingredients are kept once.
type RecipeIngredientBatch struct {
	recipeID int64
	seen     map[int64]struct{}
	rows     []RecipeIngredient
}

// NewRecipeIngredientBatch starts a batch for recipeID.
func NewRecipeIngredientBatch(recipeID int64) *RecipeIngredientBatch {
	return &RecipeIngredientBatch{
		recipeID: recipeID,
		seen:     make(map[int64]struct{}),
	}
}

// Add appends ingredientID unless it is already in the batch.
func (b *RecipeIngredientBatch) Add(ingredientID int64) *RecipeIngredientBatch {
	if _, ok := b.seen[ingredientID]; ok {
		return b
	}
	b.seen[ingredientID] = struct{}{}
	b.rows = append(b.rows, RecipeIngredient{RecipeID: b.recipeID, IngredientID: ingredientID})
	return b
}

// Rows returns the accumulated pairs in insertion order.
func (b *RecipeIngredientBatch) Rows() []RecipeIngredient {
	return b.rows
}

// Len returns the number of distinct pairs.
func (b *RecipeIngredientBatch) Len() int {
	return len(b.rows)
}

// IngredientIDs returns the distinct ingredient ids in insertion order.
func (b *RecipeIngredientBatch) IngredientIDs() []int64 {
	ids := make([]int64, 0, len(b.rows))
	for _, r := range b.rows {
		ids = append(ids, r.IngredientID)
	}
	return ids
}
