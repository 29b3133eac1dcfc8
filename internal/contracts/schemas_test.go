package contracts

import "testing"

const validImportEvent = `{
	"name": "Modern Beach House",
	"address": "Calle 10 #5-51, Cartagena",
	"price": "1250000.00",
	"codeInternal": "PROP-001",
	"year": 2020,
	"ownerId": "OWN-001",
	"images": [{"file": "https://cdn.example.com/1.jpg", "enabled": true}],
	"traces": [{"dateSale": "2021-03-01T00:00:00Z", "name": "First sale", "value": "980000.00", "tax": "49000.00"}]
}`

func TestValidateEventAcceptsValidPayload(t *testing.T) {
	err := ValidateEvent("PropertyImportEvent", "1.0.0", []byte(validImportEvent))
	if err != nil {
		t.Errorf("ValidateEvent() rejected a valid payload: %v", err)
	}
}

func TestValidateEventRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"name": `},
		{"missing required fields", `{"name": "Casa"}`},
		{"price as number", `{"name": "Casa", "address": "Calle 1", "price": 100, "codeInternal": "P-1", "year": 2020, "ownerId": "OWN-1"}`},
		{"unknown extra field", `{"name": "Casa", "address": "Calle 1", "price": "100", "codeInternal": "P-1", "year": 2020, "ownerId": "OWN-1", "surprise": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateEvent("PropertyImportEvent", "1.0.0", []byte(tt.body)); err == nil {
				t.Error("ValidateEvent() = nil, want validation error")
			}
		})
	}
}

func TestValidateEventUnknownSchema(t *testing.T) {
	if err := ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`)); err == nil {
		t.Error("ValidateEvent() = nil, want error for unregistered schema")
	}
}
