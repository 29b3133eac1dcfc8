package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// ListPropertiesUseCase - выборка всех объектов без фильтра и пагинации.
type ListPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.PropertyListView, error)
}
