package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/httpserver/deps"
)

const defaultLauncherLimit = 8

type launcherResponse struct {
	Query   string                 `json:"query"`
	Matches []domain.LauncherMatch `json:"matches"`
}

// Launcher ranks every stored bookmark against the query and serves the
// top matches for the quick-open overlay.
func Launcher(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Error(w, "missing query", http.StatusBadRequest)
			return
		}

		limit := defaultLauncherLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		matches := domain.RankLauncherMatches(query, d.Bookmarks.All(r.Context()))
		if len(matches) > limit {
			matches = matches[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(launcherResponse{Query: query, Matches: matches})
	}
}
