package usecase

import (
	"context"
	"sync"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// Фейки портов хранилищ для тестов use case-ов. Каждый метод можно
// переопределить функцией; непереопределенный метод возвращает not found.

type fakePropertyStorage struct {
	mu sync.Mutex

	countFn       func(ctx context.Context, filter domain.PropertyFilter) (int64, error)
	findPageFn    func(ctx context.Context, filter domain.PropertyFilter, page, pageSize int, includeTraces bool) ([]domain.Property, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Property, error)
	getBySlugFn   func(ctx context.Context, slug string) (*domain.Property, error)
	findByOwnerFn func(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error)
	saveFn        func(ctx context.Context, property *domain.Property) error

	countCalls    int
	findPageCalls int
	savedSlugs    []string
}

func (f *fakePropertyStorage) Count(ctx context.Context, filter domain.PropertyFilter) (int64, error) {
	f.mu.Lock()
	f.countCalls++
	f.mu.Unlock()
	if f.countFn != nil {
		return f.countFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakePropertyStorage) FindPage(ctx context.Context, filter domain.PropertyFilter, page, pageSize int, includeTraces bool) ([]domain.Property, error) {
	f.mu.Lock()
	f.findPageCalls++
	f.mu.Unlock()
	if f.findPageFn != nil {
		return f.findPageFn(ctx, filter, page, pageSize, includeTraces)
	}
	return nil, nil
}

func (f *fakePropertyStorage) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

func (f *fakePropertyStorage) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	if f.getBySlugFn != nil {
		return f.getBySlugFn(ctx, slug)
	}
	return nil, domain.ErrPropertyNotFound
}

func (f *fakePropertyStorage) FindByOwner(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error) {
	if f.findByOwnerFn != nil {
		return f.findByOwnerFn(ctx, ownerID, page, pageSize, includeTraces)
	}
	return nil, 0, nil
}

func (f *fakePropertyStorage) Save(ctx context.Context, property *domain.Property) error {
	f.mu.Lock()
	f.savedSlugs = append(f.savedSlugs, property.Slug)
	f.mu.Unlock()
	if f.saveFn != nil {
		return f.saveFn(ctx, property)
	}
	return nil
}

type fakeOwnerStorage struct {
	getByIDFn  func(ctx context.Context, id string) (*domain.Owner, error)
	getByIDsFn func(ctx context.Context, ids []string) ([]domain.Owner, error)
	findPageFn func(ctx context.Context, page, pageSize int) ([]domain.Owner, int64, error)
}

func (f *fakeOwnerStorage) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrOwnerNotFound
}

func (f *fakeOwnerStorage) GetByIDs(ctx context.Context, ids []string) ([]domain.Owner, error) {
	if f.getByIDsFn != nil {
		return f.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeOwnerStorage) FindPage(ctx context.Context, page, pageSize int) ([]domain.Owner, int64, error) {
	if f.findPageFn != nil {
		return f.findPageFn(ctx, page, pageSize)
	}
	return nil, 0, nil
}
