package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteValidationError отправляет 400 с картой нарушений по полям
func WriteValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "validation failed",
		"fields": verr.Fields,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// writeDomainError переводит ошибку ядра в HTTP-статус. Детали внутренних
// сбоев наружу уходят только в режиме разработки.
func writeDomainError(w http.ResponseWriter, logger port.LoggerPort, err error, isDevelopment bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteValidationError(w, verr)
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "property not found")
	case errors.Is(err, domain.ErrOwnerNotFound):
		WriteJSONError(w, http.StatusNotFound, "owner not found")
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.Error("Storage unavailable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "storage temporarily unavailable")
	default:
		logger.Error("Unhandled error in handler", err, nil)
		message := "internal server error"
		if isDevelopment {
			message = err.Error()
		}
		WriteJSONError(w, http.StatusInternalServerError, message)
	}
}

// parseOptionalString возвращает nil, если параметр не передан вовсе.
// Пустое значение (?name=) - это переданный параметр.
func parseOptionalString(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	value := query.Get(key)
	return &value
}

func parseOptionalDecimal(query url.Values, key string) (*decimal.Decimal, string) {
	if !query.Has(key) {
		return nil, ""
	}
	value, err := decimal.NewFromString(query.Get(key))
	if err != nil {
		return nil, "must be a valid decimal number"
	}
	return &value, ""
}

func parseOptionalInt(query url.Values, key string) (*int, string) {
	if !query.Has(key) {
		return nil, ""
	}
	value, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return nil, "must be a valid integer"
	}
	return &value, ""
}

// parsePagination читает page/pageSize с мягкой нормализацией:
// невалидные и выходящие за границы значения заменяются значениями
// по умолчанию, ошибки клиенту не возвращаются.
func parsePagination(query url.Values) (page, pageSize int) {
	page, _ = strconv.Atoi(query.Get("page"))
	if page < domain.MinPage {
		page = domain.DefaultPage
	}
	pageSize, _ = strconv.Atoi(query.Get("pageSize"))
	if pageSize < domain.MinPageSize || pageSize > domain.MaxPageSize {
		pageSize = domain.DefaultPageSize
	}
	return page, pageSize
}
