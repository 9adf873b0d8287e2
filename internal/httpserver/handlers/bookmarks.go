package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/logger"
)

// ListBookmarks serves one dial category, empty for unknown categories.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			http.Error(w, "missing category", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d.Bookmarks.List(r.Context(), category))
	}
}

type addBookmarkRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// AddBookmark appends a bookmark to its category. The URL is required but
// deliberately unvalidated (the dial accepts anything the browser does).
func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		req.Category = strings.TrimSpace(req.Category)
		if req.Category == "" {
			http.Error(w, "missing category", http.StatusBadRequest)
			return
		}
		if req.URL == "" {
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}

		bookmark, err := d.Bookmarks.Add(r.Context(), req.Category, domain.BookmarkDraft{
			Title: req.Title,
			URL:   req.URL,
		})
		if err != nil {
			d.Logger.Error("failed to save bookmark",
				logger.String("category", req.Category),
				logger.Error(err))
			http.Error(w, "failed to save bookmark", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(bookmark)
	}
}

type removeBookmarkResponse struct {
	Removed bool `json:"removed"`
}

// RemoveBookmark filters a bookmark out of its category. Removing an
// unknown id is a no-op reported as removed=false, never an error.
func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		id := chi.URLParam(r, "id")

		removed, err := d.Bookmarks.Remove(r.Context(), category, id)
		if err != nil {
			d.Logger.Error("failed to remove bookmark",
				logger.String("category", category),
				logger.String("id", id),
				logger.Error(err))
			http.Error(w, "failed to remove bookmark", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(removeBookmarkResponse{Removed: removed})
	}
}
