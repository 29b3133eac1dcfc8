package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

func TestDecimalRoundTrip(t *testing.T) {
	// Деньги не должны терять точность на пути domain -> Mongo -> domain.
	for _, raw := range []string{"1250000.00", "0.01", "999999999999.99", "0"} {
		d := decimal.RequireFromString(raw)

		stored, err := decimalToMongo(d)
		if err != nil {
			t.Fatalf("decimalToMongo(%s) returned error: %v", raw, err)
		}
		back, err := decimalFromMongo(stored)
		if err != nil {
			t.Fatalf("decimalFromMongo(%s) returned error: %v", raw, err)
		}
		if !back.Equal(d) {
			t.Errorf("round trip of %s produced %s", raw, back)
		}
	}
}

func TestPropertyDocRoundTrip(t *testing.T) {
	objID := primitive.NewObjectID()
	property := &domain.Property{
		ID:           objID.Hex(),
		Slug:         "modern-beach-house",
		Name:         "Modern Beach House",
		Address:      "Cartagena",
		Price:        decimal.RequireFromString("1250000.00"),
		CodeInternal: "PROP-001",
		Year:         2020,
		OwnerID:      "OWN-001",
		Images: []domain.PropertyImage{
			{ID: "img-1", File: "1.jpg", Enabled: true},
		},
		Traces: []domain.PropertyTrace{
			{
				ID:       "tr-1",
				DateSale: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
				Name:     "First sale",
				Value:    decimal.RequireFromString("980000.00"),
				Tax:      decimal.RequireFromString("49000.00"),
			},
		},
	}

	doc, err := fromDomainProperty(property)
	if err != nil {
		t.Fatalf("fromDomainProperty() returned error: %v", err)
	}
	back, err := doc.toDomain()
	if err != nil {
		t.Fatalf("toDomain() returned error: %v", err)
	}

	if back.ID != property.ID || back.Slug != property.Slug || back.CodeInternal != property.CodeInternal {
		t.Error("identifiers must survive the round trip")
	}
	if !back.Price.Equal(property.Price) {
		t.Errorf("price = %s, want %s", back.Price, property.Price)
	}
	if len(back.Traces) != 1 || !back.Traces[0].Tax.Equal(property.Traces[0].Tax) {
		t.Error("trace decimals must survive the round trip")
	}
}

func TestFromDomainPropertyRejectsBadID(t *testing.T) {
	property := &domain.Property{ID: "not-an-object-id", Price: decimal.Zero}
	if _, err := fromDomainProperty(property); err == nil {
		t.Error("fromDomainProperty() = nil, want error for malformed id")
	}
}

func TestDedupeIDs(t *testing.T) {
	ids := dedupeIDs([]string{"OWN-002", "OWN-001", "OWN-002", "", "OWN-003"})
	want := []string{"OWN-002", "OWN-001", "OWN-003"}
	if len(ids) != len(want) {
		t.Fatalf("dedupeIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("dedupeIDs()[%d] = %q, want %q (order preserved)", i, ids[i], want[i])
		}
	}
}
