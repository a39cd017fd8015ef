package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateCaloriesMifflinStJeor(t *testing.T) {
	cases := []struct {
		name     string
		gender   string
		activity string
		want     int
	}{
		// bmr = 700 + 1093.75 - 150 + 5 = 1648.75
		{"french sedentary male", "homme", "sédentaire", 1979},
		{"upper case aliases", "MALE", "SEDENTARY", 1979},
		{"light", "m", "light", 2267},
		{"moderate", "h", "modéré", 2556},
		{"active", "male", "intense", 2844},
		{"very active", "male", "très_actif", 3133},
		{"unknown level defaults to sedentary", "male", "couch potato", 1979},
		{"empty level defaults to sedentary", "male", "", 1979},
		// bmr = 1648.75 - 166 = 1482.75
		{"female", "femme", "sedentary", 1779},
		{"female short alias", "F", "active", 2558},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateCalories(70, 175, 30, tc.gender, tc.activity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCalculateCaloriesValidation(t *testing.T) {
	cases := []struct {
		name                string
		weight, height, age float64
		gender              string
	}{
		{"zero weight", 0, 175, 30, "male"},
		{"negative height", 70, -1, 30, "male"},
		{"zero age", 70, 175, 0, "male"},
		{"nan age", 70, 175, math.NaN(), "male"},
		{"unknown gender", 70, 175, 30, "other"},
		{"empty gender", 70, 175, 30, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateCalories(tc.weight, tc.height, tc.age, tc.gender, "sedentary")
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestCalculateBMR(t *testing.T) {
	got, err := CalculateBMR(70, 175, 30, "male")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1649 {
		t.Fatalf("expected 1649, got %d", got)
	}
}
