package handler

import (
	"log/slog"
	"net/http"

	"github.com/devsolutions/backend/internal/repository"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports whether the API can reach its database.
type HealthHandler struct {
	db repository.DB
}

func NewHealthHandler(db repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("health check failed", "request_id", GetRequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: "database unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "DevSolutions API",
	})
}
