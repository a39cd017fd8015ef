package models

// NutritionInfo is a provider-independent nutrition summary for one food query.
type NutritionInfo struct {
	Calories float64        `json:"calories"`
	ProteinG float64        `json:"protein_g"`
	FatG     float64        `json:"fat_g"`
	CarbsG   float64        `json:"carbs_g"`
	Raw      map[string]any `json:"raw,omitempty"`
}

// Recipe as returned by the recipe search provider.
type Recipe struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Servings     string `json:"servings"`
	Instructions string `json:"instructions"`
}
