package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/floos/floos/internal/httpserver/deps"
)

type reloadResponse struct {
	Status string `json:"status"`
}

// Reload asks the dial seeder to re-read its config outside the normal
// interval. The trigger channel has capacity one, so a reload already in
// flight turns further requests into 429s instead of queueing them.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if d.DialReloadTrigger == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(reloadResponse{Status: "dial seeding not configured"})
			return
		}

		select {
		case d.DialReloadTrigger <- struct{}{}:
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(reloadResponse{Status: "reload scheduled"})
		default:
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(reloadResponse{Status: "reload already pending"})
		}
	}
}
