package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"news-server/repository"
	"news-server/services"
)

type FavoritesHandler struct {
	userService *services.UserService
}

func NewFavoritesHandler(userService *services.UserService) *FavoritesHandler {
	return &FavoritesHandler{userService: userService}
}

// AddFavorite bookmarks an article for the user. Re-adding an already
// bookmarked url still reports success.
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID          string `json:"userId"`
		NewsURL         string `json:"newsUrl"`
		NewsDescription string `json:"newsDescription"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.userService.AddFavorite(r.Context(), input.UserID, input.NewsURL, input.NewsDescription)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusOK, "User not found")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeMessage(w, http.StatusOK, "News added to favorites")
	}
}

// RemoveFavorite is idempotent; removing a url that is not bookmarked still
// reports success.
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID  string `json:"userId"`
		NewsURL string `json:"newsUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.userService.RemoveFavorite(r.Context(), input.UserID, input.NewsURL)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeMessage(w, http.StatusOK, "User not found")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeMessage(w, http.StatusOK, "News removed from favorites")
	}
}

// ListFavorites returns the stored bookmarks in insertion order. The missing
// user and store failure cases respond with plain text.
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	favorites, err := h.userService.Favorites(r.Context(), userID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
	}
}
