package port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// PropertyStoragePort - исходящий порт к коллекции объектов недвижимости.
//
// Count и FindPage принимают один и тот же фильтр и считаются по одному
// и тому же предикату, но выполняются независимо: количество страниц
// должно оставаться корректным, даже если страница пустая или неполная.
type PropertyStoragePort interface {
	// Count возвращает общее число объектов, подходящих под фильтр.
	Count(ctx context.Context, filter domain.PropertyFilter) (int64, error)

	// FindPage возвращает одну страницу объектов: skip = (page-1)*pageSize,
	// limit = pageSize. pageSize <= 0 означает "без лимита" (выборка всей
	// коллекции). При includeTraces = false история сделок не выгружается
	// из хранилища (проекция, экономия трафика).
	FindPage(ctx context.Context, filter domain.PropertyFilter, page, pageSize int, includeTraces bool) ([]domain.Property, error)

	// GetByID ищет объект по первичному идентификатору. Синтаксически
	// невалидный идентификатор - это тоже ErrPropertyNotFound, а не сбой.
	GetByID(ctx context.Context, id string) (*domain.Property, error)

	// GetBySlug ищет объект по уникальному slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Property, error)

	// FindByOwner - страница объектов одного владельца плюс их общее число.
	FindByOwner(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error)

	// Save сохраняет объект (использует только путь импорта,
	// запросный конвейер хранилище не мутирует).
	Save(ctx context.Context, property *domain.Property) error
}
