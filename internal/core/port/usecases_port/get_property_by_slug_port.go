package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// GetPropertyBySlugUseCase - детальная карточка по slug.
type GetPropertyBySlugUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.PropertyDetailView, error)
}
