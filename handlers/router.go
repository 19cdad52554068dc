package handlers

import "github.com/gorilla/mux"

// NewRouter wires every API route onto a fresh router. Paths, casing
// included, are fixed by the deployed clients.
func NewRouter(auth *AuthHandler, profile *ProfileHandler, favorites *FavoritesHandler, news *NewsHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/Register", auth.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/Login", auth.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/ForgotPassword", auth.ForgotPassword).Methods("POST", "OPTIONS")

	r.HandleFunc("/profilecard/{userId}", profile.GetProfileCard).Methods("GET", "OPTIONS")
	r.HandleFunc("/update-profile/{userId}", profile.UpdateProfile).Methods("PUT", "OPTIONS")

	// /favorites/add and /favorites/remove must register before the
	// catch-all {userId} route.
	r.HandleFunc("/favorites/add", favorites.AddFavorite).Methods("POST", "OPTIONS")
	r.HandleFunc("/favorites/remove", favorites.RemoveFavorite).Methods("POST", "OPTIONS")
	r.HandleFunc("/favorites/{userId}", favorites.ListFavorites).Methods("GET", "OPTIONS")

	r.HandleFunc("/news", news.SearchNews).Methods("GET", "OPTIONS")

	return r
}
