package api

import (
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/nutrition"
	"github.com/raushankrgupta/nutritrack/utils"
)

// Numeric fields accept numbers or numeric strings; a missing field reads as NaN.

type BMIRequest struct {
	Weight *models.FlexFloat `json:"weight"`
	Height *models.FlexFloat `json:"height"`
}

type CaloriesRequest struct {
	Weight        *models.FlexFloat `json:"weight"`
	Height        *models.FlexFloat `json:"height"` // cm
	Age           *models.FlexFloat `json:"age"`
	Gender        string            `json:"gender"`
	ActivityLevel string            `json:"activity_level"`
}

// RatioOverrides replace the default 30/50/20 split for the ratios that are present.
type RatioOverrides struct {
	ProteinRatio *models.FlexFloat `json:"protein_ratio,omitempty"`
	CarbsRatio   *models.FlexFloat `json:"carbs_ratio,omitempty"`
	FatRatio     *models.FlexFloat `json:"fat_ratio,omitempty"`
}

func (o RatioOverrides) options() []nutrition.MacroOption {
	var opts []nutrition.MacroOption
	if o.ProteinRatio != nil {
		opts = append(opts, nutrition.WithProteinRatio(o.ProteinRatio.Float64()))
	}
	if o.CarbsRatio != nil {
		opts = append(opts, nutrition.WithCarbsRatio(o.CarbsRatio.Float64()))
	}
	if o.FatRatio != nil {
		opts = append(opts, nutrition.WithFatRatio(o.FatRatio.Float64()))
	}
	return opts
}

type MacrosRequest struct {
	Calories *models.FlexFloat `json:"calories"`
	RatioOverrides
}

type TargetsRequest struct {
	Weight        *models.FlexFloat `json:"weight"`
	Height        *models.FlexFloat `json:"height"` // m or cm
	Age           *models.FlexFloat `json:"age"`
	Gender        string            `json:"gender"`
	ActivityLevel string            `json:"activity_level"`
	RatioOverrides
}

type ConvertRequest struct {
	Value *models.FlexFloat `json:"value"`
	From  string            `json:"from"`
	To    string            `json:"to"`
}

// BMIHandler computes BMI and its category.
func (h *Handler) BMIHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("BMI", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	var req BMIRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	bmi, err := nutrition.CalculateBMI(req.Weight.Float64(), req.Height.Float64())
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, bmi)
}

// CaloriesHandler computes daily calorie needs.
func (h *Handler) CaloriesHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Calories", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	var req CaloriesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	calories, err := nutrition.CalculateCalories(req.Weight.Float64(), req.Height.Float64(), req.Age.Float64(), req.Gender, req.ActivityLevel)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int{"calories": calories})
}

// MacrosHandler splits a calorie total into macro grams.
func (h *Handler) MacrosHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Macros", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	var req MacrosRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	macros, err := nutrition.CalculateMacros(req.Calories.Float64(), req.options()...)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, macros)
}

// TargetsHandler runs the whole chain for an ad-hoc profile.
func (h *Handler) TargetsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Targets", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	var req TargetsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	targets, err := nutrition.ComputeTargets(nutrition.Profile{
		WeightKg:      req.Weight.Float64(),
		Height:        req.Height.Float64(),
		AgeYears:      req.Age.Float64(),
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	}, req.options()...)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, targets)
}

// ConvertHandler converts between g/kg/mg and kcal/cal.
func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Convert", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	var req ConvertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	value, err := nutrition.ConvertUnits(req.Value.Float64(), req.From, req.To)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"value": value, "unit": strings.ToLower(strings.TrimSpace(req.To))})
}
