package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// GetOwnerUseCase - карточка владельца по идентификатору.
type GetOwnerUseCase interface {
	Execute(ctx context.Context, id string) (*domain.OwnerView, error)
}
