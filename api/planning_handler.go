package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/planning"
	"github.com/raushankrgupta/nutritrack/profiles"
	"github.com/raushankrgupta/nutritrack/utils"
)

// GeneratePlanRequest is the body of POST /planning/generate. Without
// daily_calories the caller's profile target is used, then the default.
type GeneratePlanRequest struct {
	DailyCalories *models.FlexFloat `json:"daily_calories,omitempty"`
}

// PlanMealRequest addresses one meal slot. Meal carries the fields to change on PUT.
type PlanMealRequest struct {
	Day  string             `json:"day"`
	Type string             `json:"type"`
	Meal planning.MealPatch `json:"meal"`
}

// GeneratePlanHandler builds a fresh weekly plan and stores it.
func (h *Handler) GeneratePlanHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Generate Plan", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	email, err := GetUserEmailFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GeneratePlanRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	daily := 0.0
	if req.DailyCalories != nil {
		daily = req.DailyCalories.Float64()
	} else {
		profile, err := h.Profiles.Get(r.Context(), email)
		switch {
		case err == nil:
			daily = float64(profile.Targets.DailyCalories)
		case !errors.Is(err, profiles.ErrProfileNotFound):
			respondErr(w, &logMessageBuilder, err)
			return
		}
	}

	plan := h.Generator.Generate(r.Context(), daily)
	if err := h.Plans.Save(r.Context(), email, plan); err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated plan for %.0f kcal/day", daily))
	utils.RespondJSON(w, http.StatusCreated, plan)
}

// PlanHandler returns (GET) or clears (DELETE) the stored plan.
func (h *Handler) PlanHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Plan", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodGet, http.MethodDelete) {
		return
	}
	email, err := GetUserEmailFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodDelete {
		if err := h.Plans.Clear(r.Context(), email); err != nil {
			respondErr(w, &logMessageBuilder, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	plan, err := h.Plans.Get(r.Context(), email)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	if plan == nil {
		respondErr(w, &logMessageBuilder, planning.ErrPlanNotFound)
		return
	}
	utils.RespondJSON(w, http.StatusOK, plan)
}

// PlanMealHandler updates (PUT) or removes (DELETE) one meal of the plan.
func (h *Handler) PlanMealHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Plan Meal", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPut, http.MethodDelete) {
		return
	}
	email, err := GetUserEmailFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req PlanMealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	day, err := models.ParseDay(req.Day)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}
	mealType, err := models.ParseMealType(req.Type)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	var plan models.MealPlan
	if r.Method == http.MethodPut {
		plan, err = h.Plans.UpdateMeal(r.Context(), email, day, mealType, req.Meal)
	} else {
		plan, err = h.Plans.RemoveMeal(r.Context(), email, day, mealType)
	}
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("%s %s/%s", r.Method, day, mealType))
	utils.RespondJSON(w, http.StatusOK, plan)
}

// ExportPlanHandler renders the plan to PDF and returns a download link.
func (h *Handler) ExportPlanHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Export Plan", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}
	email, err := GetUserEmailFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	url, err := h.Plans.Export(r.Context(), email)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}
