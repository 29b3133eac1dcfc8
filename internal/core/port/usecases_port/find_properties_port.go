package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// FindPropertiesUseCase - поиск объектов по критериям с пагинацией.
type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filter domain.PropertyFilter) (*domain.PagedResult[domain.PropertyListView], error)
}
