package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/raushankrgupta/nutritrack/nutrition"
	"github.com/raushankrgupta/nutritrack/planning"
)

func main() {
	weight := flag.Float64("weight", 70, "weight in kg")
	height := flag.Float64("height", 175, "height in cm (or m when <= 3)")
	age := flag.Float64("age", 30, "age in years")
	gender := flag.String("gender", "male", "male|female (homme|femme accepted)")
	activity := flag.String("activity", "sedentary", "sedentary|light|moderate|active|very_active")
	plan := flag.Bool("plan", false, "also print a weekly meal plan for the daily target")
	flag.Parse()

	targets, err := nutrition.ComputeTargets(nutrition.Profile{
		WeightKg:      *weight,
		Height:        *height,
		AgeYears:      *age,
		Gender:        *gender,
		ActivityLevel: *activity,
	})
	if err != nil {
		log.Fatalf("Failed to compute targets: %v", err)
	}

	out := map[string]any{"targets": targets}
	if *plan {
		out["plan"] = planning.GenerateWeeklyPlan(float64(targets.DailyCalories))
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(b))
}
