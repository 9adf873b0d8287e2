package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/floos/floos/internal/calendar"
	"github.com/floos/floos/internal/httpserver/deps"
)

// Calendar serves the month grid the dashboard renders, with task markers
// resolved against the task store. Defaults to the current month.
func Calendar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := d.TimeNow()
		year := now.Year()
		month := int(now.Month())

		if v := r.URL.Query().Get("year"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 9999 {
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			year = n
		}
		if v := r.URL.Query().Get("month"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 12 {
				http.Error(w, "invalid month (want 1-12)", http.StatusBadRequest)
				return
			}
			month = n
		}

		ctx := r.Context()
		grid := calendar.MonthGrid(year, time.Month(month), func(dateKey string) bool {
			return d.Tasks.HasTasks(ctx, dateKey)
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(grid)
	}
}
