package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPropertyFilterHasCriteria(t *testing.T) {
	if (PropertyFilter{}).HasCriteria() {
		t.Error("empty filter must not report criteria")
	}
	if !(PropertyFilter{Name: strPtr("casa")}).HasCriteria() {
		t.Error("filter with name must report criteria")
	}
	// Даже один лишь page - это критерий: ответ становится страничным.
	if !(PropertyFilter{Page: intPtr(2)}).HasCriteria() {
		t.Error("filter with page must report criteria")
	}
}

func TestPropertyFilterNormalizeDefaults(t *testing.T) {
	page, pageSize := PropertyFilter{}.Normalize()
	if page != DefaultPage || pageSize != DefaultPageSize {
		t.Errorf("Normalize() = (%d, %d), want (%d, %d)", page, pageSize, DefaultPage, DefaultPageSize)
	}

	page, pageSize = PropertyFilter{Page: intPtr(3), PageSize: intPtr(25)}.Normalize()
	if page != 3 || pageSize != 25 {
		t.Errorf("Normalize() = (%d, %d), want (3, 25)", page, pageSize)
	}
}

func TestPropertyFilterValidateOK(t *testing.T) {
	filter := PropertyFilter{
		Name:     strPtr("Casa con jardín"),
		Address:  strPtr("Calle 45, Bogotá"),
		MinPrice: decPtr("100000"),
		MaxPrice: decPtr("500000.50"),
		Page:     intPtr(1),
		PageSize: intPtr(100),
	}
	if err := filter.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestPropertyFilterValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		filter PropertyFilter
		field  string
	}{
		{"name too long", PropertyFilter{Name: strPtr(strings.Repeat("a", MaxNameLength+1))}, "name"},
		{"name with injection characters", PropertyFilter{Name: strPtr("casa$where")}, "name"},
		{"address too long", PropertyFilter{Address: strPtr(strings.Repeat("b", MaxAddressLength+1))}, "address"},
		{"negative min price", PropertyFilter{MinPrice: decPtr("-1")}, "minPrice"},
		{"negative max price", PropertyFilter{MaxPrice: decPtr("-0.01")}, "maxPrice"},
		{"inverted price range", PropertyFilter{MinPrice: decPtr("500"), MaxPrice: decPtr("100")}, "maxPrice"},
		{"zero page", PropertyFilter{Page: intPtr(0)}, "page"},
		{"negative page", PropertyFilter{Page: intPtr(-2)}, "page"},
		{"zero page size", PropertyFilter{PageSize: intPtr(0)}, "pageSize"},
		{"page size above limit", PropertyFilter{PageSize: intPtr(MaxPageSize + 1)}, "pageSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() returned %T, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("violation for field %q missing, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestPropertyFilterValidateCollectsAllViolations(t *testing.T) {
	filter := PropertyFilter{
		Name:     strPtr(strings.Repeat("x", MaxNameLength+1)),
		MinPrice: decPtr("-5"),
		Page:     intPtr(0),
	}
	err := filter.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() returned %T, want *ValidationError", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("got %d violations, want 3: %v", len(verr.Fields), verr.Fields)
	}
}

func TestPropertyFilterValidateAccentedText(t *testing.T) {
	// Испанские акценты и ñ - легитимный ввод, не инъекция.
	filter := PropertyFilter{Name: strPtr("Peñón de Güejar"), Address: strPtr("Carrera 7, Medellín")}
	if err := filter.Validate(); err != nil {
		t.Errorf("Validate() rejected accented text: %v", err)
	}

	// Лимит длины - в символах: 100 ñ занимают 200 байт, но это валидное имя.
	atLimit := PropertyFilter{
		Name:    strPtr(strings.Repeat("ñ", MaxNameLength)),
		Address: strPtr(strings.Repeat("é", MaxAddressLength)),
	}
	if err := atLimit.Validate(); err != nil {
		t.Errorf("Validate() rejected at-limit accented text: %v", err)
	}

	overLimit := PropertyFilter{Name: strPtr(strings.Repeat("ñ", MaxNameLength+1))}
	err := overLimit.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() returned %T, want *ValidationError", err)
	}
	if _, ok := verr.Fields["name"]; !ok {
		t.Errorf("violation for field \"name\" missing, got %v", verr.Fields)
	}
}
