package services

import (
	"errors"
	"fmt"
)

// Error classes. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrUnauthenticated = errors.New("could not validate credentials")
	ErrForbidden       = errors.New("you do not have enough permissions")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInUse           = errors.New("is in use")
)

// Error variables
var (
	ErrUserAlreadyExists  = fmt.Errorf("user with this email %w", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("incorrect email or password: %w", ErrUnauthenticated)

	ErrIngredientCategoryNotFound = fmt.Errorf("ingredient category %w", ErrNotFound)
	ErrIngredientCategoryExists   = fmt.Errorf("ingredient category %w", ErrConflict)
	ErrIngredientCategoryInUse    = fmt.Errorf("ingredient category %w", ErrInUse)

	ErrIngredientNotFound = fmt.Errorf("ingredient %w", ErrNotFound)
	ErrIngredientExists   = fmt.Errorf("ingredient %w", ErrConflict)
	ErrIngredientInUse    = fmt.Errorf("ingredient %w", ErrInUse)

	ErrRecipeCategoryNotFound = fmt.Errorf("recipe category %w", ErrNotFound)
	ErrRecipeCategoryExists   = fmt.Errorf("recipe category %w", ErrConflict)
	ErrRecipeCategoryInUse    = fmt.Errorf("recipe category %w", ErrInUse)

	ErrRecipeNotFound = fmt.Errorf("recipe %w", ErrNotFound)
	ErrRecipeExists   = fmt.Errorf("recipe %w", ErrConflict)
)
