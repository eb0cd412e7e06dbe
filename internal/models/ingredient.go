package models

// IngredientCategory groups ingredients, e.g. "Dairy".
type IngredientCategory struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
}

// Ingredient belongs to exactly one IngredientCategory.
type Ingredient struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	CategoryID int64  `json:"category_id" db:"category_id"`
}
