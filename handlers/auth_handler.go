package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-server/repository"
	"news-server/services"
)

// AuthHandler serves registration, login and password reset. Expected
// business outcomes (duplicate account, wrong password) are returned as 200
// responses with a message body; only store failures map to 500.
type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// confirmPassword is matched by the client; the server ignores it.

	err := h.userService.Register(r.Context(), input.Username, input.Email, input.Phone, input.Password)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		writeMessage(w, http.StatusOK, "User already exists")
	case errors.Is(err, services.ErrEmailTaken):
		writeMessage(w, http.StatusOK, "Email already exists")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeMessage(w, http.StatusOK, "Registration success")
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.userService.Login(r.Context(), input.Username, input.Password)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusOK, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusOK, "Invalid credentials")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"_id": id, "message": "Login success"})
	}
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.userService.ResetPassword(r.Context(), input.Email, input.NewPassword)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusBadRequest, "User not found")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeMessage(w, http.StatusOK, "Password reset success")
	}
}
