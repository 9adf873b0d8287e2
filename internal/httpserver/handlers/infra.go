package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/floos/floos/internal/httpserver/deps"
)

type componentStatus struct {
	OK       bool   `json:"ok"`
	Backend  string `json:"backend,omitempty"`
	LastSync string `json:"last_sync,omitempty"`
	OffsetMS int64  `json:"offset_ms,omitempty"`
	Error    string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the health of every backing component: the KV substrate,
// the memory log database, and the clock sync loop.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		components := map[string]componentStatus{
			"storage":    checkStorage(d),
			"memory_log": checkMemoryLog(d),
			"clock":      checkClock(d),
		}

		response := infraResponse{
			Mode:       determineMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineMode(components map[string]componentStatus) string {
	if storage, exists := components["storage"]; exists && !storage.OK {
		return "critical"
	}
	if memlog, exists := components["memory_log"]; exists && !memlog.OK {
		return "degraded"
	}
	return "nominal"
}

func checkStorage(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: true, Backend: d.StorageBackend}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:      false,
			Backend: d.StorageBackend,
			Error:   err.Error(),
		}
	}
	return componentStatus{OK: true, Backend: d.StorageBackend}
}

func checkMemoryLog(d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.Memory.Ping(ctx); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}

func checkClock(d deps.Deps) componentStatus {
	if d.Clock == nil {
		return componentStatus{OK: true, LastSync: "disabled"}
	}

	lastSync := d.Clock.LastSync()
	lastSyncStr := "never"
	if !lastSync.IsZero() {
		lastSyncStr = lastSync.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:       true,
		LastSync: lastSyncStr,
		OffsetMS: d.Clock.Offset().Milliseconds(),
	}
}
