package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// ListOwnersUseCase - страница владельцев.
type ListOwnersUseCase interface {
	Execute(ctx context.Context, page, pageSize int) (*domain.PagedResult[domain.OwnerView], error)
}
