package usecases_port

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// ImportPropertyUseCase - сохранение объекта, пришедшего из очереди импорта.
// Единственный путь, который мутирует хранилище.
type ImportPropertyUseCase interface {
	Execute(ctx context.Context, property domain.Property) error
}
