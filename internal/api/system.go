package api

import (
	"net/http"
	"time"
)

var startTime = time.Now()

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
		"version":   h.version,
	}

	if lastRun := h.agent.LastRun(); lastRun != nil {
		health["last_run"] = lastRun
	}

	h.writeSuccess(w, http.StatusOK, health, "Service is healthy")
}
