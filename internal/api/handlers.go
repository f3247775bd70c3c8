package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ftpbot/internal/interfaces"

	"github.com/gorilla/mux"
)

type Handlers struct {
	agent      interfaces.Agent
	repository interfaces.RunRepository
	version    string
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func NewHandlers(agent interfaces.Agent, repo interfaces.RunRepository, version string) *Handlers {
	return &Handlers{
		agent:      agent,
		repository: repo,
		version:    version,
	}
}

func (h *Handlers) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// Run endpoints
	api.HandleFunc("/runs", h.TriggerRun).Methods("POST")
	api.HandleFunc("/runs", h.GetRuns).Methods("GET")
	api.HandleFunc("/runs/summary", h.GetRunSummary).Methods("GET")
	api.HandleFunc("/runs/{id:[0-9]+}", h.GetRun).Methods("GET")

	// System endpoints
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")

	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)
}

func (h *Handlers) writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, message string, err error) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}

	if err != nil {
		slog.Error("API error", "message", message, "error", err)
	} else {
		slog.Warn("API error", "message", message)
	}

	if jsonErr := json.NewEncoder(w).Encode(response); jsonErr != nil {
		slog.Error("failed to encode error response", "error", jsonErr)
	}
}
