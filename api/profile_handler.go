package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/utils"
)

// ProfileRequest is the body of PUT /profile.
type ProfileRequest struct {
	Name          string            `json:"name"`
	Age           *models.FlexFloat `json:"age"`
	Gender        string            `json:"gender"`
	Height        *models.FlexFloat `json:"height"`
	Weight        *models.FlexFloat `json:"weight"`
	ActivityLevel string            `json:"activity_level"`
	RatioOverrides
}

// ProfileHandler reads (GET) or replaces (PUT) the caller's profile.
func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Profile", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodGet, http.MethodPut) {
		return
	}

	email, err := GetUserEmailFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodGet {
		profile, err := h.Profiles.Get(r.Context(), email)
		if err != nil {
			respondErr(w, &logMessageBuilder, err)
			return
		}
		utils.RespondJSON(w, http.StatusOK, profile)
		return
	}

	var req ProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.Profiles.Save(r.Context(), email, models.Profile{
		Name:          req.Name,
		Age:           req.Age.Float64(),
		Gender:        req.Gender,
		Height:        req.Height.Float64(),
		Weight:        req.Weight.Float64(),
		ActivityLevel: req.ActivityLevel,
	}, req.options()...)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Profile saved, daily target %d kcal", profile.Targets.DailyCalories))
	utils.RespondJSON(w, http.StatusOK, profile)
}
