package nutrition

import (
	"fmt"
	"strconv"
)

// BMICategory is the WHO band a BMI value falls into.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// BMI is a body mass index rounded to one decimal and its category.
type BMI struct {
	Value          float64     `json:"value" bson:"value"`
	Interpretation BMICategory `json:"interpretation" bson:"interpretation"`
}

// CalculateBMI expects weight in kilograms. Height may be in meters or
// centimeters; anything above 3 is read as centimeters.
func CalculateBMI(weightKg, height float64) (BMI, error) {
	if !positive(weightKg, height) {
		return BMI{}, fmt.Errorf("%w: weight and height must be positive numbers", ErrInvalidArgument)
	}

	meters := height
	if height > 3 {
		meters = height / 100
	}

	value := roundTenth(weightKg / (meters * meters))
	return BMI{Value: value, Interpretation: BMICategoryFor(value)}, nil
}

// roundTenth rounds the exact binary value to one decimal, so 24.95
// (stored just below) becomes 24.9.
func roundTenth(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// BMICategoryFor maps a BMI value onto its band. Lower bounds are inclusive.
func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
