package models

import (
	"fmt"
	"strings"
)

// Day of the planning week.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Week lists the planning days in order.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayAliases = map[string]Day{
	"lundi":    Monday,
	"mardi":    Tuesday,
	"mercredi": Wednesday,
	"jeudi":    Thursday,
	"vendredi": Friday,
	"samedi":   Saturday,
	"dimanche": Sunday,
}

// ParseDay accepts English or French day names.
func ParseDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Week {
		if string(d) == v {
			return d, nil
		}
	}
	if d, ok := dayAliases[v]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// MealType is a slot in a planned day.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists the slots generated for each day.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

var mealTypeAliases = map[string]MealType{
	"petit-dej": Breakfast,
	"dejeuner":  Lunch,
	"déjeuner":  Lunch,
	"diner":     Dinner,
	"dîner":     Dinner,
}

// ParseMealType accepts English or French meal names. Unknown names are kept
// as custom meal types.
func ParseMealType(s string) (MealType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", fmt.Errorf("meal type is required")
	}
	if t, ok := mealTypeAliases[v]; ok {
		return t, nil
	}
	return MealType(v), nil
}

// IngredientNutrition carries whatever calorie data is already known.
type IngredientNutrition struct {
	Calories        *float64 `bson:"calories,omitempty" json:"calories,omitempty"`
	CaloriesPer100g *float64 `bson:"calories_per_100g,omitempty" json:"calories_per_100g,omitempty"`
}

// Ingredient of a planned meal.
type Ingredient struct {
	Name      string               `bson:"name" json:"name"`
	QuantityG float64              `bson:"quantity_g" json:"quantity_g"`
	Nutrition *IngredientNutrition `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
}

// PlannedMeal is one meal in the weekly plan.
type PlannedMeal struct {
	ID          string       `bson:"id" json:"id"`
	Type        MealType     `bson:"type" json:"type"`
	Title       string       `bson:"title" json:"title"`
	Calories    int          `bson:"calories" json:"calories"`
	Ingredients []Ingredient `bson:"ingredients" json:"ingredients"`
}

// MealPlan maps each day to its meals.
type MealPlan map[Day][]PlannedMeal

// Empty reports whether every day of the week is present with no meals.
func (p MealPlan) Empty() bool {
	for _, d := range Week {
		meals, ok := p[d]
		if !ok || len(meals) > 0 {
			return false
		}
	}
	return true
}
