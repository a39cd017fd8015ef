package planning

import (
	"context"
	"math"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/providers"
)

// CalculateTotalCalories sums the calories of a meal's ingredients.
// Known per-100g values win over explicit calories. Otherwise the provider is
// asked for "<name> 100g"; lookup failures count as zero.
func CalculateTotalCalories(ctx context.Context, ingredients []models.Ingredient, provider providers.NutritionProvider) int {
	total := 0.0
	for _, ing := range ingredients {
		qty := ing.QuantityG
		if math.IsNaN(qty) || math.IsInf(qty, 0) {
			qty = 0
		}

		var calories float64
		switch {
		case ing.Nutrition != nil && ing.Nutrition.CaloriesPer100g != nil && *ing.Nutrition.CaloriesPer100g != 0:
			calories = qty / 100 * *ing.Nutrition.CaloriesPer100g
		case ing.Nutrition != nil && ing.Nutrition.Calories != nil && *ing.Nutrition.Calories != 0:
			calories = *ing.Nutrition.Calories
		case strings.TrimSpace(ing.Name) != "" && provider != nil:
			info, err := provider.Lookup(ctx, strings.TrimSpace(ing.Name)+" 100g")
			if err == nil && info != nil {
				calories = qty / 100 * info.Calories
			}
		}

		if !math.IsNaN(calories) && !math.IsInf(calories, 0) {
			total += calories
		}
	}
	return int(roundHalfUp(total))
}
