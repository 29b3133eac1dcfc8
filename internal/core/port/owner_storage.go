package port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// OwnerStoragePort - исходящий порт к коллекции владельцев.
type OwnerStoragePort interface {
	// GetByID возвращает владельца или domain.ErrOwnerNotFound.
	GetByID(ctx context.Context, id string) (*domain.Owner, error)

	// GetByIDs разрешает набор идентификаторов одним запросом
	// (защита от N+1 при обогащении страницы объектов). Дубликаты
	// во входном наборе не порождают дубликатов в результате.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Owner, error)

	// FindPage - страница владельцев плюс их общее число.
	FindPage(ctx context.Context, page, pageSize int) ([]domain.Owner, int64, error)
}
