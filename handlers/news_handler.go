package handlers

import (
	"net/http"
	"strconv"

	"news-server/services"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// SearchNews proxies the external article provider. An empty q means
// trending results; provider failures come back as an empty list.
func (h *NewsHandler) SearchNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	articles := h.newsService.Search(r.Context(), query, page)
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}
