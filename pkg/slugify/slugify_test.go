package slugify

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Modern Beach House", "modern-beach-house"},
		{"Casa con Jardín", "casa-con-jardin"},
		{"  Apartamento   Nº 5  ", "apartamento-no-5"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("modern-beach-house") {
		t.Error("IsValid rejected a canonical slug")
	}
	if IsValid("Modern Beach House") {
		t.Error("IsValid accepted text with spaces and uppercase")
	}
}
