package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

type HealthHandler struct {
	storageHealth port.StorageHealthPort
}

func NewHealthHandler(storageHealth port.StorageHealthPort) *HealthHandler {
	return &HealthHandler{storageHealth: storageHealth}
}

// Health обрабатывает GET /health: проверяет доступность хранилища
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.storageHealth.Ping(ctx); err != nil {
		logger := contextkeys.LoggerFromContext(r.Context())
		logger.Warn("Health check failed: storage is not reachable", port.Fields{"error": err.Error()})

		RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
