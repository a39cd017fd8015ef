package api

import (
	"net/http"

	"github.com/raushankrgupta/nutritrack/utils"
)

// NewRouter wires every route behind latency logging and CORS.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("/auth/signup", h.SignupHandler)
	mux.HandleFunc("/auth/login", h.LoginHandler)
	mux.HandleFunc("/auth/forgot-password", h.ForgotPasswordHandler)
	mux.HandleFunc("/auth/reset-password", h.ResetPasswordHandler)

	// Calculators
	mux.HandleFunc("/nutrition/bmi", h.BMIHandler)
	mux.HandleFunc("/nutrition/calories", h.CaloriesHandler)
	mux.HandleFunc("/nutrition/macros", h.MacrosHandler)
	mux.HandleFunc("/nutrition/targets", h.TargetsHandler)
	mux.HandleFunc("/nutrition/convert", h.ConvertHandler)

	// Authenticated
	mux.HandleFunc("/profile", h.AuthMiddleware(h.ProfileHandler))
	mux.HandleFunc("/foods/nutrition", h.AuthMiddleware(h.FoodNutritionHandler))
	mux.HandleFunc("/foods/calories", h.AuthMiddleware(h.MealCaloriesHandler))
	mux.HandleFunc("/recipes", h.AuthMiddleware(h.RecipesHandler))
	mux.HandleFunc("/planning", h.AuthMiddleware(h.PlanHandler))
	mux.HandleFunc("/planning/generate", h.AuthMiddleware(h.GeneratePlanHandler))
	mux.HandleFunc("/planning/meal", h.AuthMiddleware(h.PlanMealHandler))
	mux.HandleFunc("/planning/export", h.AuthMiddleware(h.ExportPlanHandler))

	return corsMiddleware(allowedOrigins)(utils.LatencyMiddleware(h.Logger, mux))
}
