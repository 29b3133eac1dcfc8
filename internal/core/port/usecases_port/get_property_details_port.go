package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// GetPropertyDetailsUseCase - детальная карточка по первичному идентификатору.
type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.PropertyDetailView, error)
}
