package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/logger"
)

// ListMemoryItems serves the full memory log. Order is store order; clients
// sort by created_at when they need chronology.
func ListMemoryItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Memory.All(r.Context())
		if err != nil {
			d.Logger.Error("failed to read memory items", logger.Error(err))
			http.Error(w, "failed to read memory items", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}
}

type saveMemoryItemRequest struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// SaveMemoryItem appends one item to the memory log.
func SaveMemoryItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveMemoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		item, err := d.Memory.Save(r.Context(), domain.MemoryItem{
			Type:      req.Type,
			Content:   req.Content,
			CreatedAt: req.CreatedAt,
		})
		if err != nil {
			d.Logger.Error("failed to save memory item",
				logger.String("type", req.Type),
				logger.Error(err))
			http.Error(w, "failed to save memory item", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(item)
	}
}
