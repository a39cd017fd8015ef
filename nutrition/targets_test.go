package nutrition

import (
	"errors"
	"testing"
)

func TestComputeTargets(t *testing.T) {
	profiles := []Profile{
		{WeightKg: 70, Height: 175, AgeYears: 30, Gender: "homme", ActivityLevel: "sédentaire"},
		{WeightKg: 70, Height: 1.75, AgeYears: 30, Gender: "male", ActivityLevel: "sedentary"},
	}
	want := Targets{
		BMRCalories:   1649,
		DailyCalories: 1979,
		Macros:        Macros{Protein: 148, Carbs: 247, Fat: 44},
		BMI:           BMI{Value: 22.9, Interpretation: Normal},
	}
	for _, p := range profiles {
		got, err := ComputeTargets(p)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", p, err)
		}
		if got != want {
			t.Fatalf("profile %+v: expected %+v, got %+v", p, want, got)
		}
	}
}

func TestComputeTargetsPropagatesValidation(t *testing.T) {
	_, err := ComputeTargets(Profile{WeightKg: 70, Height: 175, AgeYears: 30, Gender: "x"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestConvertUnits(t *testing.T) {
	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1500, "g", "kg", 1.5},
		{2, "KG", "g", 2000},
		{250, "mg", "g", 0.25},
		{3, "g", "mg", 3000},
		{2, "kcal", "cal", 2000},
		{500, "cal", "kcal", 0.5},
		{42, "g", "G", 42},
	}
	for _, tc := range cases {
		got, err := ConvertUnits(tc.value, tc.from, tc.to)
		if err != nil {
			t.Fatalf("ConvertUnits(%v, %s, %s): %v", tc.value, tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Errorf("ConvertUnits(%v, %s, %s) = %v, want %v", tc.value, tc.from, tc.to, got, tc.want)
		}
	}

	if _, err := ConvertUnits(1, "g", "kcal"); !errors.Is(err, ErrUnsupportedConversion) {
		t.Fatalf("expected ErrUnsupportedConversion, got %v", err)
	}
}
