package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFlexFloatDecoding(t *testing.T) {
	var req struct {
		Weight  *FlexFloat `json:"weight"`
		Height  *FlexFloat `json:"height"`
		Age     *FlexFloat `json:"age"`
		Missing *FlexFloat `json:"missing"`
		Null    *FlexFloat `json:"null"`
		Bool    *FlexFloat `json:"bool"`
	}
	body := `{"weight": 70.5, "height": " 175 ", "age": "thirty", "null": null, "bool": true}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := req.Weight.Float64(); got != 70.5 {
		t.Errorf("weight: got %v", got)
	}
	if got := req.Height.Float64(); got != 175 {
		t.Errorf("height: got %v", got)
	}
	if got := req.Age.Float64(); !math.IsNaN(got) {
		t.Errorf("age: expected NaN, got %v", got)
	}
	if got := req.Missing.Float64(); !math.IsNaN(got) {
		t.Errorf("missing: expected NaN, got %v", got)
	}
	if got := req.Bool.Float64(); !math.IsNaN(got) {
		t.Errorf("bool: expected NaN, got %v", got)
	}
}

func TestMealPlanEmpty(t *testing.T) {
	plan := MealPlan{}
	if plan.Empty() {
		t.Fatal("a plan without days is not the empty week")
	}
	for _, d := range Week {
		plan[d] = []PlannedMeal{}
	}
	if !plan.Empty() {
		t.Fatal("expected seven empty days to be empty")
	}
	plan[Friday] = []PlannedMeal{{Type: Dinner}}
	if plan.Empty() {
		t.Fatal("plan with a meal is not empty")
	}
}

func TestParseDayAndMealType(t *testing.T) {
	if d, err := ParseDay("Mercredi"); err != nil || d != Wednesday {
		t.Fatalf("ParseDay(Mercredi) = %q, %v", d, err)
	}
	if _, err := ParseDay("someday"); err == nil {
		t.Fatal("expected error for unknown day")
	}
	if m, err := ParseMealType("petit-dej"); err != nil || m != Breakfast {
		t.Fatalf("ParseMealType(petit-dej) = %q, %v", m, err)
	}
	if m, err := ParseMealType("Snack"); err != nil || m != "snack" {
		t.Fatalf("ParseMealType(Snack) = %q, %v", m, err)
	}
}
