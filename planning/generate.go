// Package planning builds, stores and exports weekly meal plans.
package planning

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/raushankrgupta/nutritrack/models"
)

// DefaultDailyCalories is used when the daily target is zero or not a number.
const DefaultDailyCalories = 2000

// MinMealCalories is the floor applied to every generated meal.
const MinMealCalories = 200

var mealShares = map[models.MealType]float64{
	models.Breakfast: 0.25,
	models.Lunch:     0.35,
	models.Dinner:    0.40,
}

func roundHalfUp(v float64) float64 { return math.Floor(v + 0.5) }

// dayVariance cycles -5%, 0, +5% so consecutive days differ.
func dayVariance(idx int) float64 {
	return 1 + float64((idx%3)-1)*0.05
}

func defaultIngredients() []models.Ingredient {
	return []models.Ingredient{
		{Name: "yogurt", QuantityG: 125},
		{Name: "banana", QuantityG: 100},
	}
}

// GenerateWeeklyPlan splits dailyCalories over three meals for each day of the week.
func GenerateWeeklyPlan(dailyCalories float64) models.MealPlan {
	daily := dailyCalories
	// Negative targets are kept and end up on the per-meal floor.
	if daily == 0 || math.IsNaN(daily) || math.IsInf(daily, 0) {
		daily = DefaultDailyCalories
	}

	plan := make(models.MealPlan, len(models.Week))
	for idx, day := range models.Week {
		variance := dayVariance(idx)
		meals := make([]models.PlannedMeal, 0, len(models.MealTypes))
		for _, mt := range models.MealTypes {
			base := roundHalfUp(daily * mealShares[mt])
			calories := int(math.Max(MinMealCalories, roundHalfUp(base*variance)))
			meals = append(meals, models.PlannedMeal{
				ID:          fmt.Sprintf("%s-%s", day, mt),
				Type:        mt,
				Title:       fmt.Sprintf("%s - %s", mt, day),
				Calories:    calories,
				Ingredients: defaultIngredients(),
			})
		}
		plan[day] = meals
	}
	return plan
}

// Titler suggests a meal title for a slot of the plan.
type Titler interface {
	Title(ctx context.Context, day models.Day, mealType models.MealType, calories int) (string, error)
}

// Generator produces weekly plans, optionally asking a Titler for meal names.
type Generator struct {
	titler Titler
	logger *slog.Logger
}

func NewGenerator(titler Titler, logger *slog.Logger) *Generator {
	return &Generator{titler: titler, logger: logger}
}

// Generate builds the plan and replaces default titles where the titler succeeds.
func (g *Generator) Generate(ctx context.Context, dailyCalories float64) models.MealPlan {
	plan := GenerateWeeklyPlan(dailyCalories)
	if g == nil || g.titler == nil {
		return plan
	}

	for _, day := range models.Week {
		for i, meal := range plan[day] {
			title, err := g.titler.Title(ctx, day, meal.Type, meal.Calories)
			if err != nil {
				g.logger.Warn("meal title suggestion failed, keeping default", "day", day, "type", meal.Type, "error", err)
				continue
			}
			if title != "" {
				plan[day][i].Title = title
			}
		}
	}
	return plan
}
