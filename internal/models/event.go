package models

// Recipe event types published after a committed change.
const (
	RecipeCreated = "recipe.created"
	RecipeDeleted = "recipe.deleted"
)

// RecipeEvent describes a committed recipe change.
type RecipeEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // RecipeCreated or RecipeDeleted
	RecipeID  int64  `json:"recipe_id"` // Affected recipe
	ActorID   int64  `json:"actor_id"`  // User who made the change
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
