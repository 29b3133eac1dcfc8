package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFindPropertiesValidatesBeforeStorage(t *testing.T) {
	properties := &fakePropertyStorage{}
	owners := &fakeOwnerStorage{}
	uc := NewFindPropertiesUseCase(properties, owners)

	filter := domain.PropertyFilter{MinPrice: decPtr("500"), MaxPrice: decPtr("100")}
	_, err := uc.Execute(context.Background(), filter)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Execute() returned %v, want *ValidationError", err)
	}
	if properties.countCalls != 0 || properties.findPageCalls != 0 {
		t.Error("storage must not be touched when validation fails")
	}
}

func TestFindPropertiesReturnsPagedViews(t *testing.T) {
	page := []domain.Property{
		{Slug: "casa-uno", Name: "Casa Uno", OwnerID: "OWN-001", Price: decimal.RequireFromString("100000")},
		{Slug: "casa-dos", Name: "Casa Dos", OwnerID: "OWN-002", Price: decimal.RequireFromString("200000")},
	}

	properties := &fakePropertyStorage{
		countFn: func(ctx context.Context, f domain.PropertyFilter) (int64, error) {
			return 42, nil
		},
		findPageFn: func(ctx context.Context, f domain.PropertyFilter, p, ps int, includeTraces bool) ([]domain.Property, error) {
			if includeTraces {
				t.Error("list query must not load traces")
			}
			if p != 2 || ps != 10 {
				t.Errorf("FindPage got page=%d pageSize=%d, want 2, 10", p, ps)
			}
			return page, nil
		},
	}
	owners := &fakeOwnerStorage{
		getByIDsFn: func(ctx context.Context, ids []string) ([]domain.Owner, error) {
			if len(ids) != 2 {
				t.Errorf("owner batch lookup got %v, want both distinct ids", ids)
			}
			return []domain.Owner{{ID: "OWN-001"}}, nil
		},
	}
	uc := NewFindPropertiesUseCase(properties, owners)

	result, err := uc.Execute(context.Background(), domain.PropertyFilter{Page: intPtr(2)})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if result.TotalCount != 42 || result.Page != 2 || result.PageSize != 10 {
		t.Errorf("pagination metadata = (%d, %d, %d), want (42, 2, 10)", result.TotalCount, result.Page, result.PageSize)
	}
	if len(result.Data) != 2 {
		t.Fatalf("got %d views, want 2", len(result.Data))
	}
	if result.Data[0].OwnerID != "OWN-001" {
		t.Error("resolved owner reference must be visible in the list view")
	}
	// Второй владелец не разрешился: ссылка не показывается.
	if result.Data[1].OwnerID != "" {
		t.Error("dangling owner reference must not be visible in the list view")
	}
}

func TestFindPropertiesEmptyFilterUsesDefaults(t *testing.T) {
	// Пустой фильтр: пагинация по умолчанию, первая страница из 10.
	properties := &fakePropertyStorage{
		countFn: func(ctx context.Context, f domain.PropertyFilter) (int64, error) {
			return 3, nil
		},
		findPageFn: func(ctx context.Context, f domain.PropertyFilter, p, ps int, includeTraces bool) ([]domain.Property, error) {
			if p != domain.DefaultPage || ps != domain.DefaultPageSize {
				t.Errorf("FindPage got page=%d pageSize=%d, want defaults (%d, %d)", p, ps, domain.DefaultPage, domain.DefaultPageSize)
			}
			return []domain.Property{{Slug: "casa-uno"}, {Slug: "casa-dos"}, {Slug: "casa-tres"}}, nil
		},
	}
	uc := NewFindPropertiesUseCase(properties, &fakeOwnerStorage{})

	result, err := uc.Execute(context.Background(), domain.PropertyFilter{})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if result.Page != domain.DefaultPage || result.PageSize != domain.DefaultPageSize {
		t.Errorf("pagination metadata = (%d, %d), want defaults (%d, %d)", result.Page, result.PageSize, domain.DefaultPage, domain.DefaultPageSize)
	}
	if result.TotalCount != 3 || len(result.Data) != 3 {
		t.Errorf("got total=%d, %d views; want 3 and 3", result.TotalCount, len(result.Data))
	}
}

func TestFindPropertiesCountFailure(t *testing.T) {
	properties := &fakePropertyStorage{
		countFn: func(ctx context.Context, f domain.PropertyFilter) (int64, error) {
			return 0, domain.ErrStorageUnavailable
		},
	}
	uc := NewFindPropertiesUseCase(properties, &fakeOwnerStorage{})

	_, err := uc.Execute(context.Background(), domain.PropertyFilter{Name: strPtr("casa")})
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("Execute() = %v, want ErrStorageUnavailable from the count query", err)
	}
}

func TestFindPropertiesEmptyPageKeepsTotal(t *testing.T) {
	// Страница за пределами данных: пустая выдача, но корректный total.
	properties := &fakePropertyStorage{
		countFn: func(ctx context.Context, f domain.PropertyFilter) (int64, error) {
			return 15, nil
		},
	}
	uc := NewFindPropertiesUseCase(properties, &fakeOwnerStorage{})

	result, err := uc.Execute(context.Background(), domain.PropertyFilter{Page: intPtr(99)})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if len(result.Data) != 0 {
		t.Errorf("got %d views, want empty page", len(result.Data))
	}
	if result.TotalCount != 15 {
		t.Errorf("TotalCount = %d, want 15 even for an empty page", result.TotalCount)
	}
}

func TestListPropertiesReturnsFlatViews(t *testing.T) {
	properties := &fakePropertyStorage{
		findPageFn: func(ctx context.Context, f domain.PropertyFilter, p, ps int, includeTraces bool) ([]domain.Property, error) {
			if f.HasCriteria() {
				t.Error("list all must use an empty filter")
			}
			if ps > 0 {
				t.Errorf("list all must be unbounded, got pageSize=%d", ps)
			}
			return []domain.Property{{Slug: "casa-uno"}, {Slug: "casa-dos"}}, nil
		},
	}
	uc := NewListPropertiesUseCase(properties, &fakeOwnerStorage{})

	views, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("got %d views, want 2", len(views))
	}
}
