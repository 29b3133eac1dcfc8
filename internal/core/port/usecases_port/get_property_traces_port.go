package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// GetPropertyTracesUseCase - история сделок объекта по slug.
type GetPropertyTracesUseCase interface {
	Execute(ctx context.Context, slug string) ([]domain.PropertyTraceView, error)
}
