package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

type noopLogger struct{}

func (noopLogger) Info(string, port.Fields)         {}
func (noopLogger) Warn(string, port.Fields)         {}
func (noopLogger) Error(string, error, port.Fields) {}
func (noopLogger) Debug(string, port.Fields)        {}
func (l noopLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=3&pageSize=50", 3, 50},
		{"zero page falls back", "page=0", 1, 10},
		{"negative page falls back", "page=-2", 1, 10},
		{"oversized pageSize falls back", "pageSize=1000", 1, 10},
		{"garbage falls back", "page=abc&pageSize=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			page, pageSize := parsePagination(values)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("parsePagination(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestWriteDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"property not found", domain.ErrPropertyNotFound, 404},
		{"owner not found", fmt.Errorf("lookup: %w", domain.ErrOwnerNotFound), 404},
		{"storage unavailable", domain.ErrStorageUnavailable, 503},
		{"validation", &domain.ValidationError{Fields: map[string]string{"page": "bad"}}, 400},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, noopLogger{}, tt.err, false)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteDomainErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDomainError(rec, noopLogger{}, errors.New("connection string leaked"), false)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("error = %q, internal details must not leak in production mode", body["error"])
	}

	rec = httptest.NewRecorder()
	writeDomainError(rec, noopLogger{}, errors.New("connection string leaked"), true)
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "connection string leaked" {
		t.Errorf("error = %q, development mode must surface details", body["error"])
	}
}

func TestWriteValidationErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, &domain.ValidationError{Fields: map[string]string{
		"maxPrice": "maximum price must be greater than or equal to minimum price",
	}})

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Error != "validation failed" {
		t.Errorf("error = %q, want validation failed", body.Error)
	}
	if _, ok := body.Fields["maxPrice"]; !ok {
		t.Errorf("fields = %v, want maxPrice violation", body.Fields)
	}
}
