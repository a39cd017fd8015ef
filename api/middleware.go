package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/utils"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
)

var errNoUser = errors.New("user not found in context")

// AuthMiddleware requires a valid bearer token and puts its claims in the request context.
func (h *Handler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(w, nil, "Authorization header required", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(h.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(w, nil, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userEmailKey, claims.Email)
		next(w, r.WithContext(ctx))
	}
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", errNoUser
	}
	return id, nil
}

// GetUserEmailFromContext returns the authenticated user's email.
func GetUserEmailFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", errNoUser
	}
	return email, nil
}

// corsMiddleware allows the configured origins; an empty list allows any origin.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	_, allowAll := allowed["*"]
	allowAll = allowAll || len(allowed) == 0

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
