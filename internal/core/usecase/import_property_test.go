package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

func TestImportPropertyAssignsSlug(t *testing.T) {
	properties := &fakePropertyStorage{}
	uc := NewImportPropertyUseCase(properties)

	err := uc.Execute(context.Background(), domain.Property{Name: "Modern Beach House", CodeInternal: "PROP-001"})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if len(properties.savedSlugs) != 1 || properties.savedSlugs[0] != "modern-beach-house" {
		t.Errorf("saved slugs = %v, want [modern-beach-house]", properties.savedSlugs)
	}
}

func TestImportPropertyKeepsExistingSlug(t *testing.T) {
	properties := &fakePropertyStorage{}
	uc := NewImportPropertyUseCase(properties)

	err := uc.Execute(context.Background(), domain.Property{Name: "Modern Beach House", Slug: "legacy-slug"})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if properties.savedSlugs[0] != "legacy-slug" {
		t.Errorf("saved slug = %q, existing slug must not be regenerated", properties.savedSlugs[0])
	}
}

func TestImportPropertyRetriesOnSlugConflict(t *testing.T) {
	calls := 0
	properties := &fakePropertyStorage{
		saveFn: func(ctx context.Context, p *domain.Property) error {
			calls++
			if calls == 1 {
				return domain.ErrSlugConflict
			}
			return nil
		},
	}
	uc := NewImportPropertyUseCase(properties)

	err := uc.Execute(context.Background(), domain.Property{Name: "Modern Beach House"})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("Save called %d times, want 2 (retry after conflict)", calls)
	}

	retried := properties.savedSlugs[1]
	if !strings.HasPrefix(retried, "modern-beach-house-") {
		t.Errorf("retry slug = %q, want original slug with a suffix", retried)
	}
	if len(retried) != len("modern-beach-house-")+8 {
		t.Errorf("retry slug = %q, want an 8-character suffix", retried)
	}
}

func TestImportPropertyGivesUpAfterSecondConflict(t *testing.T) {
	properties := &fakePropertyStorage{
		saveFn: func(ctx context.Context, p *domain.Property) error {
			return domain.ErrSlugConflict
		},
	}
	uc := NewImportPropertyUseCase(properties)

	err := uc.Execute(context.Background(), domain.Property{Name: "Modern Beach House"})
	if !errors.Is(err, domain.ErrSlugConflict) {
		t.Errorf("Execute() = %v, want ErrSlugConflict after the single retry", err)
	}
	if len(properties.savedSlugs) != 2 {
		t.Errorf("Save called %d times, want exactly 2", len(properties.savedSlugs))
	}
}

func TestImportPropertyRejectsUnsluggableName(t *testing.T) {
	properties := &fakePropertyStorage{}
	uc := NewImportPropertyUseCase(properties)

	err := uc.Execute(context.Background(), domain.Property{Name: "!!!"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for a name that yields no slug")
	}
	if len(properties.savedSlugs) != 0 {
		t.Error("storage must not be touched when slug derivation fails")
	}
}
