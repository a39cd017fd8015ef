package providers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raushankrgupta/nutritrack/providers/apininjas"
	"github.com/raushankrgupta/nutritrack/providers/edamam"
)

var ErrUnknownProvider = errors.New("unknown nutrition provider")

// Config carries credentials for every supported provider.
type Config struct {
	APINinjasKey string
	EdamamAppID  string
	EdamamAppKey string
	Timeout      time.Duration
}

// GetNutritionProvider returns the provider registered under name.
func GetNutritionProvider(name string, cfg Config) (NutritionProvider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "apininjas", "api-ninjas":
		return apininjas.NewClient(cfg.APINinjasKey, cfg.Timeout), nil
	case "edamam":
		return edamam.NewClient(cfg.EdamamAppID, cfg.EdamamAppKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}

// GetRecipeSearcher returns the recipe search backend. API Ninjas is the only one.
func GetRecipeSearcher(cfg Config) RecipeSearcher {
	return apininjas.NewClient(cfg.APINinjasKey, cfg.Timeout)
}
