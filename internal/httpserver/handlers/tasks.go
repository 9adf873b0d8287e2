package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/logger"
)

// ListTasks serves the tasks of one date partition.
func ListTasks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateKey := strings.TrimSpace(r.URL.Query().Get("date"))
		if _, err := domain.ParseDateKey(dateKey); err != nil {
			http.Error(w, "invalid or missing date (want YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d.Tasks.List(r.Context(), dateKey))
	}
}

type addTaskRequest struct {
	Date        string `json:"date"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Link        string `json:"link"`
	CreatedAt   int64  `json:"createdAt"`
}

// AddTask appends a task to its date partition. The subject may be empty;
// the date must parse. Persistence failures surface as 500 so data loss is
// never silent.
func AddTask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if _, err := domain.ParseDateKey(req.Date); err != nil {
			http.Error(w, "invalid or missing date (want YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		task, err := d.Tasks.Add(r.Context(), req.Date, domain.TaskDraft{
			Subject:     req.Subject,
			Description: req.Description,
			Link:        req.Link,
			CreatedAt:   req.CreatedAt,
		})
		if err != nil {
			d.Logger.Error("failed to save task",
				logger.String("date", req.Date),
				logger.Error(err))
			http.Error(w, "failed to save task", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(task)
	}
}
