package api

import (
	"errors"
	"net/http"
	"strconv"

	"ftpbot/internal/models"
	"ftpbot/internal/repository"

	"github.com/gorilla/mux"
)

// TriggerRun queues a run. Runs never overlap, so a second request while one
// is pending is rejected rather than queued.
func (h *Handlers) TriggerRun(w http.ResponseWriter, r *http.Request) {
	if !h.agent.Trigger(models.TriggerAPI) {
		h.writeError(w, http.StatusConflict, "A run is already pending", nil)
		return
	}

	h.writeSuccess(w, http.StatusAccepted, nil, "Run queued")
}

func (h *Handlers) GetRuns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.RunFilter{}

	if statusStr := query.Get("status"); statusStr != "" {
		filter.Status = []models.RunStatus{models.RunStatus(statusStr)}
	}

	if trigger := query.Get("trigger"); trigger != "" {
		filter.Trigger = models.Trigger(trigger)
	}

	// Parse pagination
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 1000 {
			filter.Limit = limit
		} else {
			filter.Limit = 50
		}
	} else {
		filter.Limit = 50
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	if sortOrder := query.Get("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	runs, err := h.repository.GetRuns(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get runs", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, runs, "")
}

func (h *Handlers) GetRun(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid run ID", err)
		return
	}

	run, err := h.repository.GetRun(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Run not found", nil)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Failed to get run", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, run, "")
}

func (h *Handlers) GetRunSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repository.GetRunSummary()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get run summary", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, summary, "")
}
