package nutrition

// Profile is the anthropometric input for ComputeTargets.
type Profile struct {
	WeightKg      float64 `json:"weight_kg" bson:"weight_kg"`
	Height        float64 `json:"height" bson:"height"` // meters or centimeters
	AgeYears      float64 `json:"age_years" bson:"age_years"`
	Gender        string  `json:"gender" bson:"gender"`
	ActivityLevel string  `json:"activity_level" bson:"activity_level"`
}

// Targets are the daily figures derived from a Profile.
type Targets struct {
	BMRCalories   int    `json:"bmr_calories" bson:"bmr_calories"`
	DailyCalories int    `json:"daily_calories" bson:"daily_calories"`
	Macros        Macros `json:"macros" bson:"macros"`
	BMI           BMI    `json:"bmi" bson:"bmi"`
}

// HeightCm returns the profile height in centimeters.
func (p Profile) HeightCm() float64 {
	if p.Height > 0 && p.Height <= 3 {
		return p.Height * 100
	}
	return p.Height
}

// ComputeTargets chains BMR, daily calories, macros and BMI for a profile.
func ComputeTargets(p Profile, opts ...MacroOption) (Targets, error) {
	heightCm := p.HeightCm()

	bmr, err := CalculateBMR(p.WeightKg, heightCm, p.AgeYears, p.Gender)
	if err != nil {
		return Targets{}, err
	}
	daily, err := CalculateCalories(p.WeightKg, heightCm, p.AgeYears, p.Gender, p.ActivityLevel)
	if err != nil {
		return Targets{}, err
	}
	macros, err := CalculateMacros(float64(daily), opts...)
	if err != nil {
		return Targets{}, err
	}
	bmi, err := CalculateBMI(p.WeightKg, p.Height)
	if err != nil {
		return Targets{}, err
	}

	return Targets{
		BMRCalories:   bmr,
		DailyCalories: daily,
		Macros:        macros,
		BMI:           bmi,
	}, nil
}
