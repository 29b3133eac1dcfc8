package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// GetOwnerPropertiesUseCase - страница объектов одного владельца.
type GetOwnerPropertiesUseCase interface {
	Execute(ctx context.Context, ownerID string, page, pageSize int) (*domain.PagedResult[domain.PropertyListView], error)
}
