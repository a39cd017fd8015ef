package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/utils"
)

// SignupRequest represents the payload for user registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the payload for forgot password
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the payload for resetting password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

func (h *Handler) issueToken(user *models.User) (string, error) {
	return utils.GenerateToken(h.JWTSecret, h.TokenTTL, user.ID, user.Email)
}

// SignupHandler handles user registration
func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Signup", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}

	var req SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Credentials.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		respondErr(w, &logMessageBuilder, fmt.Errorf("generate token: %w", err))
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s registered", user.ID))
	utils.RespondJSON(w, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// LoginHandler handles user login
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Login", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Credentials.VerifyLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		respondErr(w, &logMessageBuilder, fmt.Errorf("generate token: %w", err))
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s logged in", user.ID))
	utils.RespondJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// ForgotPasswordHandler issues a reset code and sends it to the user.
func (h *Handler) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Forgot Password", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}

	var req ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Credentials.GetUser(r.Context(), req.Email)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	code, err := h.Credentials.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	if err := h.Notifier.SendResetCode(r.Context(), *user, code); err != nil {
		// The code stays valid; the client can ask again.
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to send reset code: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to send reset code", http.StatusBadGateway)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Reset code sent")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "A reset code has been sent to your email"})
}

// ResetPasswordHandler sets a new password when the reset code matches.
func (h *Handler) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer h.startLog("Reset Password", &logMessageBuilder)()

	if !allowMethod(w, r, &logMessageBuilder, http.MethodPost) {
		return
	}

	var req ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Credentials.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		respondErr(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Password reset successfully")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
