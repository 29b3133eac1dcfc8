package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

func TestGetOwnerPropertiesChecksOwnerFirst(t *testing.T) {
	properties := &fakePropertyStorage{
		findByOwnerFn: func(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error) {
			t.Error("FindByOwner must not be called when the owner does not exist")
			return nil, 0, nil
		},
	}
	uc := NewGetOwnerPropertiesUseCase(properties, &fakeOwnerStorage{})

	_, err := uc.Execute(context.Background(), "OWN-404", 1, 10)
	if !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Errorf("Execute() = %v, want ErrOwnerNotFound", err)
	}
}

func TestGetOwnerPropertiesReturnsPage(t *testing.T) {
	owners := &fakeOwnerStorage{
		getByIDFn: func(ctx context.Context, id string) (*domain.Owner, error) {
			return &domain.Owner{ID: id, Name: "Carlos"}, nil
		},
	}
	properties := &fakePropertyStorage{
		findByOwnerFn: func(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error) {
			if ownerID != "OWN-001" {
				t.Errorf("FindByOwner got ownerID %q, want OWN-001", ownerID)
			}
			return []domain.Property{{Slug: "casa-uno", OwnerID: ownerID}}, 7, nil
		},
	}
	uc := NewGetOwnerPropertiesUseCase(properties, owners)

	result, err := uc.Execute(context.Background(), "OWN-001", 1, 10)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if result.TotalCount != 7 || len(result.Data) != 1 {
		t.Errorf("got total=%d items=%d, want 7 and 1", result.TotalCount, len(result.Data))
	}
	if result.Data[0].OwnerID != "OWN-001" {
		t.Error("owner reference must be visible: the owner was just resolved")
	}
}

func TestGetOwner(t *testing.T) {
	owners := &fakeOwnerStorage{
		getByIDFn: func(ctx context.Context, id string) (*domain.Owner, error) {
			if id != "OWN-001" {
				return nil, domain.ErrOwnerNotFound
			}
			return &domain.Owner{ID: id, Name: "Carlos", Address: "Bogotá"}, nil
		},
	}
	uc := NewGetOwnerUseCase(owners)

	view, err := uc.Execute(context.Background(), "OWN-001")
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if view.Name != "Carlos" {
		t.Errorf("Name = %q, want Carlos", view.Name)
	}

	if _, err := uc.Execute(context.Background(), "OWN-404"); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Errorf("Execute() = %v, want ErrOwnerNotFound", err)
	}
}

func TestListOwners(t *testing.T) {
	owners := &fakeOwnerStorage{
		findPageFn: func(ctx context.Context, page, pageSize int) ([]domain.Owner, int64, error) {
			return []domain.Owner{{ID: "OWN-001"}, {ID: "OWN-002"}}, 12, nil
		},
	}
	uc := NewListOwnersUseCase(owners)

	result, err := uc.Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if result.TotalCount != 12 || len(result.Data) != 2 {
		t.Errorf("got total=%d items=%d, want 12 and 2", result.TotalCount, len(result.Data))
	}
	if result.TotalPages() != 2 {
		t.Errorf("TotalPages() = %d, want 2", result.TotalPages())
	}
}
