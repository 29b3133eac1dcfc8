package usecase

import (
	"context"
	"errors"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// GetPropertyBySlugUseCase - детальная карточка по slug. Отсутствие slug
// в коллекции - обычный результат просмотра, а не сбой, но наружу
// сигнализируется тем же ErrPropertyNotFound, что и поиск по id.
type GetPropertyBySlugUseCase struct {
	properties port.PropertyStoragePort
	owners     port.OwnerStoragePort
}

func NewGetPropertyBySlugUseCase(properties port.PropertyStoragePort, owners port.OwnerStoragePort) *GetPropertyBySlugUseCase {
	return &GetPropertyBySlugUseCase{properties: properties, owners: owners}
}

func (uc *GetPropertyBySlugUseCase) Execute(ctx context.Context, slug string) (*domain.PropertyDetailView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyBySlug", "slug": slug})
	ucLogger.Debug("Use case started", nil)

	property, err := uc.properties.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found by slug", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	view, err := assembleDetail(ctx, uc.owners, ucLogger, *property)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return view, nil
}
