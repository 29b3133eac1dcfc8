package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
	usecases_port "github.com/Wilmaryucuma7/real-estate-api/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	findPropertiesUC    usecases_port.FindPropertiesUseCase
	listPropertiesUC    usecases_port.ListPropertiesUseCase
	getDetailsUC        usecases_port.GetPropertyDetailsUseCase
	getBySlugUC         usecases_port.GetPropertyBySlugUseCase
	getTracesUC         usecases_port.GetPropertyTracesUseCase
	isDevelopment       bool
}

func NewPropertyHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	listPropertiesUC usecases_port.ListPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase,
	getBySlugUC usecases_port.GetPropertyBySlugUseCase,
	getTracesUC usecases_port.GetPropertyTracesUseCase,
	isDevelopment bool) *PropertyHandler {
	return &PropertyHandler{
		findPropertiesUC: findPropertiesUC,
		listPropertiesUC: listPropertiesUC,
		getDetailsUC:     getDetailsUC,
		getBySlugUC:      getBySlugUC,
		getTracesUC:      getTracesUC,
		isDevelopment:    isDevelopment,
	}
}

// FindProperties обрабатывает GET /api/v1/properties.
// Запрос без единого query-параметра - это "показать все": плоский список
// без метаданных пагинации. Любой переданный параметр включает
// фильтрацию с пагинацией.
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	minPrice, minPriceErr := parseOptionalDecimal(query, "minPrice")
	maxPrice, maxPriceErr := parseOptionalDecimal(query, "maxPrice")
	page, pageErr := parseOptionalInt(query, "page")
	pageSize, pageSizeErr := parseOptionalInt(query, "pageSize")

	// Синтаксически не разобранные параметры собираем в ту же карту
	// нарушений, что и семантическая валидация.
	parseFields := make(map[string]string)
	if minPriceErr != "" {
		parseFields["minPrice"] = minPriceErr
	}
	if maxPriceErr != "" {
		parseFields["maxPrice"] = maxPriceErr
	}
	if pageErr != "" {
		parseFields["page"] = pageErr
	}
	if pageSizeErr != "" {
		parseFields["pageSize"] = pageSizeErr
	}
	if len(parseFields) > 0 {
		WriteValidationError(w, &domain.ValidationError{Fields: parseFields})
		return
	}

	filter := domain.PropertyFilter{
		Name:     parseOptionalString(query, "name"),
		Address:  parseOptionalString(query, "address"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
		PageSize: pageSize,
	}

	handlerLogger := logger.WithFields(port.Fields{"handler": "FindProperties"})

	if !filter.HasCriteria() {
		handlerLogger.Debug("Processing request to list all properties", nil)

		views, err := h.listPropertiesUC.Execute(r.Context())
		if err != nil {
			writeDomainError(w, handlerLogger, err, h.isDevelopment)
			return
		}
		RespondWithJSON(w, http.StatusOK, toPropertyListItemResponses(views))
		return
	}

	handlerLogger.Debug("Processing request to find properties", nil)

	result, err := h.findPropertiesUC.Execute(r.Context(), filter)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPaginatedResponse(result, toPropertyListItemResponses(result.Data)))
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	propertyID := chi.URLParam(r, "propertyID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})

	view, err := h.getDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyDetailResponse(view))
}

// GetPropertyBySlug обрабатывает GET /api/v1/properties/slug/{slug}
func (h *PropertyHandler) GetPropertyBySlug(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetPropertyBySlug",
		"slug":    slug,
	})

	view, err := h.getBySlugUC.Execute(r.Context(), slug)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyDetailResponse(view))
}

// GetPropertyTraces обрабатывает GET /api/v1/properties/slug/{slug}/traces
func (h *PropertyHandler) GetPropertyTraces(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetPropertyTraces",
		"slug":    slug,
	})

	views, err := h.getTracesUC.Execute(r.Context(), slug)
	if err != nil {
		writeDomainError(w, handlerLogger, err, h.isDevelopment)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyTraceResponses(views))
}
