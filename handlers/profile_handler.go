package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"news-server/repository"
	"news-server/services"
)

type ProfileHandler struct {
	userService *services.UserService
}

func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GetProfileCard returns username, email and phone for the user id in the
// path. The password never leaves the server.
func (h *ProfileHandler) GetProfileCard(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.userService.Profile(r.Context(), userID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"username": user.Username,
			"email":    user.Email,
			"phone":    user.Phone,
		})
	}
}

// UpdateProfile applies any subset of username/email/phone. Only the first
// failing check is reported; nothing is persisted on failure.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.userService.UpdateProfile(r.Context(), userID, input.Username, input.Email, input.Phone)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, "Username is already taken")
	case errors.Is(err, services.ErrEmailDomain):
		writeMessage(w, http.StatusBadRequest, "Email must end with @gmail.com")
	case errors.Is(err, services.ErrPhoneFormat):
		writeMessage(w, http.StatusBadRequest, "Phone number must be 10 digits")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		writeMessage(w, http.StatusOK, "Profile updated successfully")
	}
}
