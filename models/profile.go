package models

import (
	"time"

	"github.com/raushankrgupta/nutritrack/nutrition"
)

// Profile is a user's body measurements together with the targets computed from them.
type Profile struct {
	Email         string            `bson:"email" json:"email"`
	Name          string            `bson:"name" json:"name"`
	Age           float64           `bson:"age" json:"age"`
	Gender        string            `bson:"gender" json:"gender"`
	Height        float64           `bson:"height" json:"height"` // in cm, or m when <= 3
	Weight        float64           `bson:"weight" json:"weight"` // in kg
	ActivityLevel string            `bson:"activity_level" json:"activity_level"`
	Targets       nutrition.Targets `bson:"targets" json:"targets"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}

// NutritionProfile converts the stored measurements into engine input.
func (p Profile) NutritionProfile() nutrition.Profile {
	return nutrition.Profile{
		WeightKg:      p.Weight,
		Height:        p.Height,
		AgeYears:      p.Age,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
	}
}
