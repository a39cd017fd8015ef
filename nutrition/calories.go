package nutrition

import (
	"fmt"
	"strings"
)

// Gender as accepted by the Mifflin-St Jeor formula.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

var genderAliases = map[string]Gender{
	"male":   Male,
	"m":      Male,
	"homme":  Male,
	"h":      Male,
	"female": Female,
	"f":      Female,
	"femme":  Female,
}

const defaultActivityFactor = 1.2

var activityFactors = map[string]float64{
	"sedentary":  1.2,
	"sedentaire": 1.2,
	"sédentaire": 1.2,
	"faible":     1.2,

	"light": 1.375,
	"leger": 1.375,
	"léger": 1.375,

	"moderate": 1.55,
	"modere":   1.55,
	"modéré":   1.55,

	"active":  1.725,
	"actif":   1.725,
	"intense": 1.725,

	"very_active": 1.9,
	"tres_actif":  1.9,
	"très_actif":  1.9,
	"sportif":     1.9,
}

// ParseGender normalizes a gender label case-insensitively.
func ParseGender(s string) (Gender, error) {
	g, ok := genderAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown gender %q, use male/female or homme/femme", ErrInvalidArgument, s)
	}
	return g, nil
}

// ActivityFactor returns the TDEE multiplier for an activity level.
// Unknown levels fall back to sedentary.
func ActivityFactor(level string) float64 {
	if f, ok := activityFactors[strings.ToLower(strings.TrimSpace(level))]; ok {
		return f
	}
	return defaultActivityFactor
}

func basalRate(weightKg, heightCm, ageYears float64, gender Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if gender == Male {
		return bmr + 5
	}
	return bmr - 161
}

func parseBodyInputs(weightKg, heightCm, ageYears float64, gender string) (Gender, error) {
	if !positive(weightKg, heightCm, ageYears) {
		return 0, fmt.Errorf("%w: weight, height and age must be positive numbers", ErrInvalidArgument)
	}
	return ParseGender(gender)
}

// CalculateBMR returns the Mifflin-St Jeor basal metabolic rate, rounded.
func CalculateBMR(weightKg, heightCm, ageYears float64, gender string) (int, error) {
	g, err := parseBodyInputs(weightKg, heightCm, ageYears, gender)
	if err != nil {
		return 0, err
	}
	return int(roundHalfUp(basalRate(weightKg, heightCm, ageYears, g))), nil
}

// CalculateCalories returns the recommended daily calories: BMR scaled by
// the activity factor.
func CalculateCalories(weightKg, heightCm, ageYears float64, gender, activityLevel string) (int, error) {
	g, err := parseBodyInputs(weightKg, heightCm, ageYears, gender)
	if err != nil {
		return 0, err
	}
	bmr := basalRate(weightKg, heightCm, ageYears, g)
	return int(roundHalfUp(bmr * ActivityFactor(activityLevel))), nil
}
