package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
	usecases_port "github.com/Wilmaryucuma7/real-estate-api/internal/core/port/usecases_port"
)

type OwnerHandler struct {
	getOwnerUC           usecases_port.GetOwnerUseCase
	listOwnersUC         usecases_port.ListOwnersUseCase
	getOwnerPropertiesUC usecases_port.GetOwnerPropertiesUseCase
	isDevelopment        bool
}

func NewOwnerHandler(
	getOwnerUC usecases_port.GetOwnerUseCase,
	listOwnersUC usecases_port.ListOwnersUseCase,
	getOwnerPropertiesUC usecases_port.GetOwnerPropertiesUseCase,
	isDevelopment bool) *OwnerHandler {
	return &OwnerHandler{
		getOwnerUC:           getOwnerUC,
		listOwnersUC:         listOwnersUC,
		getOwnerPropertiesUC: getOwnerPropertiesUC,
		isDevelopment:        isDevelopment,
	}
}

// ListOwners обрабатывает GET /api/v1/owners
func (h *OwnerHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	page, pageSize := parsePagination(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "ListOwners",
		"page":      page,
		"page_size": pageSize,
	})

	result, err := h.listOwnersUC.Execute(r.Context(), page, pageSize)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPaginatedResponse(result, toOwnerResponses(result.Data)))
}

// GetOwner обрабатывает GET /api/v1/owners/{ownerID}
func (h *OwnerHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	ownerID := chi.URLParam(r, "ownerID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "GetOwner",
		"owner_id": ownerID,
	})

	view, err := h.getOwnerUC.Execute(r.Context(), ownerID)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOwnerResponse(*view))
}

// GetOwnerProperties обрабатывает GET /api/v1/owners/{ownerID}/properties
func (h *OwnerHandler) GetOwnerProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	ownerID := chi.URLParam(r, "ownerID")
	page, pageSize := parsePagination(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "GetOwnerProperties",
		"owner_id":  ownerID,
		"page":      page,
		"page_size": pageSize,
	})

	result, err := h.getOwnerPropertiesUC.Execute(r.Context(), ownerID, page, pageSize)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPaginatedResponse(result, toPropertyListItemResponses(result.Data)))
}
