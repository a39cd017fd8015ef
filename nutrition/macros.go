package nutrition

import (
	"fmt"
	"math"
)

// Energy densities in kcal per gram.
const (
	proteinKcalPerGram = 4
	carbsKcalPerGram   = 4
	fatKcalPerGram     = 9
)

// Macros holds daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein" bson:"protein"`
	Carbs   int `json:"carbs" bson:"carbs"`
	Fat     int `json:"fat" bson:"fat"`
}

// MacroRatio is the share of total calories given to each macronutrient.
type MacroRatio struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DefaultMacroRatio is 30% protein, 50% carbs, 20% fat.
var DefaultMacroRatio = MacroRatio{Protein: 0.30, Carbs: 0.50, Fat: 0.20}

// MacroOption overrides part of the default ratio.
type MacroOption func(*MacroRatio)

func WithProteinRatio(r float64) MacroOption { return func(m *MacroRatio) { m.Protein = r } }
func WithCarbsRatio(r float64) MacroOption   { return func(m *MacroRatio) { m.Carbs = r } }
func WithFatRatio(r float64) MacroOption     { return func(m *MacroRatio) { m.Fat = r } }

// WithRatio replaces all three shares at once.
func WithRatio(ratio MacroRatio) MacroOption {
	return func(m *MacroRatio) { *m = ratio }
}

// CalculateMacros splits totalCalories into grams of protein, carbs and fat.
// Each macro is rounded on its own, so the grams converted back to calories
// may drift a few kcal from the total.
func CalculateMacros(totalCalories float64, opts ...MacroOption) (Macros, error) {
	if !positive(totalCalories) {
		return Macros{}, fmt.Errorf("%w: total calories must be a positive number", ErrInvalidArgument)
	}

	ratio := DefaultMacroRatio
	for _, opt := range opts {
		opt(&ratio)
	}
	for _, r := range []float64{ratio.Protein, ratio.Carbs, ratio.Fat} {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return Macros{}, fmt.Errorf("%w: macro ratio must be a finite number", ErrInvalidArgument)
		}
	}

	return Macros{
		Protein: int(roundHalfUp(totalCalories * ratio.Protein / proteinKcalPerGram)),
		Carbs:   int(roundHalfUp(totalCalories * ratio.Carbs / carbsKcalPerGram)),
		Fat:     int(roundHalfUp(totalCalories * ratio.Fat / fatKcalPerGram)),
	}, nil
}
