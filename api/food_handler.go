package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/planning"
	"github.com/raushankrgupta/nutritrack/utils"
)

// respondUpstreamErr maps provider failures. Errors without a known kind come from the upstream API.
func respondUpstreamErr(w http.ResponseWriter, b *strings.Builder, err error) {
	if statusFor(err) != http.StatusInternalServerError {
		respondErr(w, b, err)
		return
	}
	utils.AddToLogMessage(b, fmt.Sprintf("Provider error: %v", err))
	utils.RespondError(w, b, "Nutrition provider unavailable", http.StatusBadGateway)
}

// FoodNutritionHandler looks up nutrition facts for ?query=.
func (h *Handler) FoodNutritionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Food Nutrition", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("query")
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Query: %q via %s", query, h.Foods.Name()))

	info, err := h.Foods.Lookup(r.Context(), query)
	if err != nil {
		respondUpstreamErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, info)
}

// MealCaloriesRequest is the body of POST /foods/calories.
type MealCaloriesRequest struct {
	Ingredients []models.Ingredient `json:"ingredients"`
}

// MealCaloriesHandler totals the calories of a list of ingredients.
func (h *Handler) MealCaloriesHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Meal Calories", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}

	var req MealCaloriesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	total := planning.CalculateTotalCalories(r.Context(), req.Ingredients, h.Foods)
	utils.RespondJSON(w, http.StatusOK, map[string]int{"calories": total})
}

// RecipesHandler searches recipes for ?query=.
func (h *Handler) RecipesHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Recipes", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodGet) {
		return
	}

	recipes, err := h.Recipes.SearchRecipes(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		respondUpstreamErr(w, &logMessageBuilder, err)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Found %d recipes", len(recipes)))
	utils.RespondJSON(w, http.StatusOK, recipes)
}
