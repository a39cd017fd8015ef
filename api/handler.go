package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/nutritrack/credentials"
	"github.com/raushankrgupta/nutritrack/notify"
	"github.com/raushankrgupta/nutritrack/nutrition"
	"github.com/raushankrgupta/nutritrack/planning"
	"github.com/raushankrgupta/nutritrack/profiles"
	"github.com/raushankrgupta/nutritrack/providers"
	"github.com/raushankrgupta/nutritrack/utils"
)

// Dependencies collects what the handlers need.
type Dependencies struct {
	Credentials *credentials.Service
	Profiles    *profiles.Service
	Plans       *planning.Service
	Generator   *planning.Generator
	Foods       providers.NutritionProvider
	Recipes     providers.RecipeSearcher
	Notifier    notify.Notifier
	JWTSecret   []byte
	TokenTTL    time.Duration
	Logger      *slog.Logger
}

// Handler serves the HTTP API.
type Handler struct {
	Dependencies
}

func NewHandler(deps Dependencies) *Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Handler{Dependencies: deps}
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// startLog opens the per-request trace and returns the func that flushes it.
func (h *Handler) startLog(name string, b *strings.Builder) func() {
	utils.AddToLogMessage(b, fmt.Sprintf("[%s API]", name))
	return func() { utils.FlushLogMessage(h.Logger, name, b) }
}

func allowMethod(w http.ResponseWriter, r *http.Request, b *strings.Builder, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	utils.RespondError(w, b, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, nutrition.ErrInvalidArgument),
		errors.Is(err, nutrition.ErrUnsupportedConversion),
		errors.Is(err, credentials.ErrInvalidCredentials),
		errors.Is(err, credentials.ErrMissingEmail),
		errors.Is(err, credentials.ErrInvalidParameters),
		errors.Is(err, credentials.ErrInvalidRegistration),
		errors.Is(err, providers.ErrMissingQuery):
		return http.StatusBadRequest
	case errors.Is(err, credentials.ErrUserNotFound),
		errors.Is(err, profiles.ErrProfileNotFound),
		errors.Is(err, planning.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, credentials.ErrInvalidPassword),
		errors.Is(err, credentials.ErrInvalidResetCode):
		return http.StatusUnauthorized
	case errors.Is(err, credentials.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, providers.ErrMissingCredentials),
		errors.Is(err, planning.ErrExportDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondErr writes err with its mapped status. Internal errors are not echoed.
func respondErr(w http.ResponseWriter, b *strings.Builder, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.AddToLogMessage(b, fmt.Sprintf("Internal error: %v", err))
		utils.RespondError(w, b, "Internal server error", status)
		return
	}
	utils.RespondError(w, b, err.Error(), status)
}
