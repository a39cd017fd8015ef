package providers

import (
	"context"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/providers/base"
)

var (
	ErrMissingQuery       = base.ErrMissingQuery
	ErrMissingCredentials = base.ErrMissingCredentials
)

// NutritionProvider defines the interface for food nutrition sources
type NutritionProvider interface {
	// Name identifies the provider in logs and config
	Name() string
	// Lookup returns normalized nutrition facts for a food query
	Lookup(ctx context.Context, food string) (*models.NutritionInfo, error)
}

// RecipeSearcher finds recipes by keyword or ingredient.
type RecipeSearcher interface {
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
}
