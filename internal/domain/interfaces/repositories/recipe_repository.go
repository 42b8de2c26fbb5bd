// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"formulagen/internal/domain/entities"
)

// RecipeRepository defines the interface for accessing manifest recipes
type RecipeRepository interface {
	// GetRecipe retrieves a manifest recipe by name
	GetRecipe(ctx context.Context, name string) (*entities.Recipe, error)

	// ListRecipes returns all available manifest recipes
	ListRecipes(ctx context.Context) ([]*entities.Recipe, error)
}
